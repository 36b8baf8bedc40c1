package request

import "loanflow-service/internal/domain/stage"

// AdminStatus is the admin's gatekeeping decision on a request. Any value may
// move to any other; no transition graph is enforced.
type AdminStatus string

const (
	AdminPending  AdminStatus = "pending"
	AdminAccept   AdminStatus = "accept"
	AdminRejected AdminStatus = "rejected"
)

func (s AdminStatus) Valid() bool {
	switch s {
	case AdminPending, AdminAccept, AdminRejected:
		return true
	}
	return false
}

// Status is the legacy progress axis driving the customer-facing timeline.
// It runs in parallel to Stage and is overwritten directly, never advanced.
type Status string

const (
	StatusPending            Status = "pending"
	StatusReviewingDocuments Status = "reviewing documents"
	StatusValidation         Status = "validation"
	StatusEvaluation         Status = "evaluation"
	StatusSignature          Status = "signature"
	StatusDeposit            Status = "deposit"
	StatusComplete           Status = "complete"
	StatusRejected           Status = "rejected"
)

// StatusSequence is the timeline order of the legacy axis.
var StatusSequence = []string{
	string(StatusPending),
	string(StatusReviewingDocuments),
	string(StatusValidation),
	string(StatusEvaluation),
	string(StatusSignature),
	string(StatusDeposit),
	string(StatusComplete),
	string(StatusRejected),
}

func (s Status) Valid() bool { return stage.IndexOf(StatusSequence, string(s)) >= 0 }

// Stage is the primary processing pipeline. The stepper offers a direct jump
// to any member, so the setter is unconstrained; Error sits at the end of the
// list as the out-of-band terminal.
type Stage string

const (
	StageApplication    Stage = "Application"
	StageDocument       Stage = "Document"
	StageValidation     Stage = "Validation"
	StageEvaluation     Stage = "Evaluation"
	StageSignature      Stage = "Signature"
	StageDeposit        Stage = "Deposit"
	StageExpressDeposit Stage = "Express Deposit"
	StageCompleted      Stage = "Completed"
	StageError          Stage = "Error"
)

// StageSequence is the stepper order, Error last.
var StageSequence = []string{
	string(StageApplication),
	string(StageDocument),
	string(StageValidation),
	string(StageEvaluation),
	string(StageSignature),
	string(StageDeposit),
	string(StageExpressDeposit),
	string(StageCompleted),
	string(StageError),
}

func (s Stage) Valid() bool { return stage.IndexOf(StageSequence, string(s)) >= 0 }

// Steps returns the stepper display states for the current pipeline position.
func (s Stage) Steps() []stage.Step { return stage.Classify(StageSequence, string(s)) }

// TimelineSteps returns the customer-facing timeline states for the legacy
// status axis.
func (s Status) TimelineSteps() []stage.Step {
	return stage.Classify(StatusSequence, string(s))
}
