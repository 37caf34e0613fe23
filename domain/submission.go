package domain

import "time"

// Submission is the inbound command handled by the ingestion gate.
// Email is optional (authenticated users only); IP is always supplied
// by the HTTP layer.
type Submission struct {
	Text    string
	Country string
	Email   string
	IP      string
}

type OutcomeKind string

const (
	OutcomeAccepted         OutcomeKind = "ACCEPTED"
	OutcomeInvalid          OutcomeKind = "INVALID"
	OutcomeRateLimited      OutcomeKind = "RATE_LIMITED"
	OutcomeNotPositive      OutcomeKind = "NOT_POSITIVE"
	OutcomeClassifierFailed OutcomeKind = "CLASSIFIER_FAILED"
	OutcomeStorageFailed    OutcomeKind = "STORAGE_FAILED"
)

// Outcome is the terminal state of one submission.
// Remaining and ResetTime are set for RATE_LIMITED, Reason for
// NOT_POSITIVE when the classifier supplied one.
type Outcome struct {
	Kind      OutcomeKind
	Reason    string
	Remaining int
	ResetTime time.Time
}

func (o Outcome) Accepted() bool {
	return o.Kind == OutcomeAccepted
}

// Verdict is the classifier's answer for one message.
type Verdict struct {
	IsPositive bool   `json:"isPositive"`
	Reason     string `json:"reason,omitempty"`
}
