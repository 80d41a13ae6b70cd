package logging

import "github.com/tether-travel/tether/internal/domain"

// Field names shared by the gateway client and the flows.
const (
	FieldOp        = "op"
	FieldDomain    = "domain"
	FieldRequestID = "request_id"
	FieldItemID    = "item_id"
)

// ForOp tags l with a planner operation ("search", "save", "retrieve",
// "remove") and the domain it acts on. An empty d is left out.
func ForOp(l Logger, op string, d domain.Domain) Logger {
	if d == "" {
		return l.With(FieldOp, op)
	}
	return l.With(FieldOp, op, FieldDomain, string(d))
}

// ForRequest is ForOp plus the X-Request-ID of one gateway exchange.
func ForRequest(l Logger, op string, d domain.Domain, requestID string) Logger {
	return ForOp(l, op, d).With(FieldRequestID, requestID)
}
