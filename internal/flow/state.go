package flow

// State is a step of the search state machine.
type State int

const (
	Idle State = iota
	Validating
	InFlight
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case InFlight:
		return "in_flight"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
