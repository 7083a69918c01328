package uploader

import (
	"errors"
	"fmt"
)

// Status tracks one item through the upload sequence.
type Status int

const (
	Pending Status = iota
	Uploading
	AwaitingPopup
	Confirming
	AwaitingSuccess
	Succeeded
	Failed
	Skipped
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Uploading:
		return "uploading"
	case AwaitingPopup:
		return "awaiting-popup"
	case Confirming:
		return "confirming"
	case AwaitingSuccess:
		return "awaiting-success"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Step names one sub-step of the per-item sequence, used to tag failures so
// operator-facing diagnostics are step-specific.
type Step string

const (
	StepStage   Step = "stage"
	StepTrigger Step = "trigger"
	StepPopup   Step = "popup"
	StepConfirm Step = "confirm"
	StepSuccess Step = "success"
)

var (
	// ErrConfirmationRejected means every confirmation attempt failed,
	// including the manual gate.
	ErrConfirmationRejected = errors.New("transaction confirmation failed")
	// ErrSuccessNotDetected means the visible success indicator never
	// appeared after the transaction wait.
	ErrSuccessNotDetected = errors.New("upload completion not detected")
	// ErrAbandoned means the operator chose to stop the remaining batch.
	ErrAbandoned = errors.New("batch abandoned by operator")
)

// StepError tags a failure with the sub-step that produced it.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Item is one unit of upload work.
type Item struct {
	ID         string
	Path       string
	Status     Status
	FailedStep Step
}
