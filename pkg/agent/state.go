package agent

import "errors"

// Engine-level failures that terminate the loop. Tool errors never reach
// here; they flow back to the model as observations.
var (
	// ErrProtocol means the model could not hold the ReAct format after
	// repeated correction. Not retryable.
	ErrProtocol = errors.New("model failed to follow the response format")

	// ErrDeadline means the turn budget elapsed and the forced conclusion
	// also failed. Retryable by the worker.
	ErrDeadline = errors.New("turn deadline exceeded")
)

const maxConsecutiveMalformed = 3

// iterationState tracks loop progress across steps.
type iterationState struct {
	step                 int
	consecutiveMalformed int
}

// recordMalformed counts a reply with no usable action or answer. Returns
// true once the model has been malformed maxConsecutiveMalformed times in
// a row, at which point the loop gives up.
func (s *iterationState) recordMalformed() bool {
	s.consecutiveMalformed++
	return s.consecutiveMalformed >= maxConsecutiveMalformed
}

func (s *iterationState) recordParsed() {
	s.consecutiveMalformed = 0
}
