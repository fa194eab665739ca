package assessment

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStarted is returned when an operation requires Start to
	// have been called first.
	ErrNotStarted = errors.New("domain assessment not started")

	// ErrNoPendingQuestion is returned when an answer arrives with no
	// question outstanding.
	ErrNoPendingQuestion = errors.New("no question awaiting an answer")

	// ErrDomainComplete is returned when an operation targets a domain
	// whose status is already terminal.
	ErrDomainComplete = errors.New("domain assessment already complete")
)

// InvalidAnswerError is returned when the submitted answer index is
// outside the question's option range. No state is mutated.
type InvalidAnswerError struct {
	Index   int
	Options int
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("answer index %d out of range for %d options", e.Index, e.Options)
}
