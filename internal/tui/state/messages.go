package state

import (
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/flow"
)

// toastMsg is sent when the notifier shows a message.
type toastMsg struct {
	Notification domain.Notification
}

// toastClearedMsg is sent when a shown message expires or is dismissed.
type toastClearedMsg struct {
	Notification domain.Notification
}

// navigateMsg is sent when a search succeeded and its results should be shown.
type navigateMsg struct {
	Intent flow.Intent
}

// principalMsg is sent when the signed-in user changes.
type principalMsg struct {
	Principal *domain.Principal
}

// searchDoneMsg is sent when a submitted search resolved.
type searchDoneMsg struct {
	Domain  domain.Domain
	Outcome *flow.Outcome
	Err     error
}

// saveDoneMsg is sent when a save resolved.
type saveDoneMsg struct {
	Domain domain.Domain
	OK     bool
}

// removeDoneMsg is sent when a remove resolved.
type removeDoneMsg struct {
	Domain domain.Domain
	ID     string
	OK     bool
}

// savedLoadedMsg is sent when a saved list was fetched.
type savedLoadedMsg struct {
	Domain domain.Domain
	Items  []domain.SearchResult
	Err    error
}
