// Package domain defines the types and ports of the puzzle service
package domain

import (
	"fmt"
	"strconv"
	"time"

	perr "xaoc/internal/platform/errors"
	ptime "xaoc/internal/platform/time"
	"xaoc/internal/platform/validate"
)

// Puzzle identifies one daily puzzle
type Puzzle struct {
	Year int `validate:"gte=2015"`
	Day  int `validate:"min=1,max=25"`
}

// Validate checks the range of Year and Day
// Years beyond the current event are left to release gating
func (p Puzzle) Validate() error { return validate.Struct(p) }

// String renders the puzzle as 2015-01
func (p Puzzle) String() string { return fmt.Sprintf("%d-%02d", p.Year, p.Day) }

// ReleaseAt is the instant the puzzle unlocks
func (p Puzzle) ReleaseAt() time.Time { return ptime.ReleaseAt(p.Year, p.Day) }

// InputPath is the server path of the personal input
func (p Puzzle) InputPath() string { return fmt.Sprintf("/%d/day/%d/input", p.Year, p.Day) }

// AnswerPath is the server path answers are posted to
func (p Puzzle) AnswerPath() string { return fmt.Sprintf("/%d/day/%d/answer", p.Year, p.Day) }

// Part selects one half of a puzzle
type Part int

// Parts
const (
	PartOne Part = 1
	PartTwo Part = 2
)

// String renders the part number, which is also the server's level value
func (p Part) String() string { return strconv.Itoa(int(p)) }

// Outcome classifies the server's reply to a submission
type Outcome int

// Outcomes
const (
	OutcomeUnknown Outcome = iota
	OutcomeCorrect
	OutcomeWrong
	OutcomeTooSoon
	OutcomeAlreadyAnswered
)

var outcomeNames = [...]string{
	OutcomeUnknown:         "Unknown",
	OutcomeCorrect:         "Correct",
	OutcomeWrong:           "Wrong",
	OutcomeTooSoon:         "TooSoon",
	OutcomeAlreadyAnswered: "AlreadyAnswered",
}

// String returns the outcome name
func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "Outcome(" + strconv.Itoa(int(o)) + ")"
}

// Submission is the classified reply to one answer post
// Message is the human readable text of the reply, possibly empty
type Submission struct {
	Outcome Outcome
	Message string
}

// NotReleasedError reports a puzzle requested before it unlocks
type NotReleasedError struct {
	Puzzle Puzzle
	Wait   time.Duration
	Err    error
}

// NotReleased builds the error for p with wait remaining
func NotReleased(p Puzzle, wait time.Duration) *NotReleasedError {
	return &NotReleasedError{
		Puzzle: p,
		Wait:   wait,
		Err: perr.Newf(perr.ErrorCodeNotYetReleased,
			"not yet released; retry in %s", ptime.FormatWait(wait)),
	}
}

// Error interface
func (e *NotReleasedError) Error() string { return e.Err.Error() }

// Unwrap interface
func (e *NotReleasedError) Unwrap() error { return e.Err }
