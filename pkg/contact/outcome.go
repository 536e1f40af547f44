package contact

// Outcome is how a submission ended.
type Outcome string

const (
	OutcomeDelivered        Outcome = "delivered"
	OutcomeFallbackInvoked  Outcome = "fallback"
	OutcomeValidationFailed Outcome = "validation_failed"
)

// State is a step of a submission.
type State string

const (
	StateStart      State = "start"
	StateAttempting State = "attempting"
	StateFallback   State = "fallback"
	StateDelivered  State = "delivered"
)

// Event moves a submission between states.
type Event string

const (
	EventDispatch Event = "dispatch"
	EventSucceed  Event = "succeed"
	EventFail     Event = "fail"
)
