package colors

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var (
	traceMu    sync.Mutex
	traceMuted atomic.Bool
)

// Event is one line of the debug trace: a planner operation, the domain it
// acted on and the gateway request it produced.
type Event struct {
	Time      string `json:"time"`
	Op        string `json:"op"`
	Domain    string `json:"domain,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// MuteTrace stops trace output until UnmuteTrace. The TUI mutes it so JSON
// lines do not land on top of the alternate screen.
func MuteTrace() {
	traceMuted.Store(true)
}

// UnmuteTrace resumes trace output.
func UnmuteTrace() {
	traceMuted.Store(false)
}

// Trace writes ev as a JSON line to stderr when debug output is on. err, if
// not nil, fills ev.Error.
func Trace(ev Event, err error) {
	if !debugEnabled || traceMuted.Load() {
		return
	}
	ev.Time = time.Now().UTC().Format(time.RFC3339)
	if err != nil {
		ev.Error = err.Error()
	}
	data, marshalErr := json.Marshal(ev)
	if marshalErr != nil {
		errorFallback(fmt.Sprintf("failed to marshal trace event: %v", marshalErr))
		return
	}
	traceMu.Lock()
	defer traceMu.Unlock()
	if _, writeErr := fmt.Fprintf(errWriter(), "%s\n", data); writeErr != nil {
		errorFallback(fmt.Sprintf("failed to write trace event: %v", writeErr))
	}
}
