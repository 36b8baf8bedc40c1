package perception

import (
	"errors"
	"time"

	"loanflow-service/internal/domain/stage"
)

var (
	ErrNotFound      = errors.New("perception not found")
	ErrAlreadyExists = errors.New("perception for this loan already exists")
)

// Stage is the collections pipeline. Same rules as the request pipeline:
// direct jump to any member, positional display computation.
type Stage string

const (
	StageNew           Stage = "New"
	StageNegotiation   Stage = "Negotiation"
	StageNotice7Days   Stage = "Notice 7 Days"
	StageNotice72h     Stage = "Notice 72h"
	StagePreCollection Stage = "Pre Collection"
	StageCollection    Stage = "Collection"
	StageLoss          Stage = "Loss"
	StageResolved      Stage = "Resolved"
)

var StageSequence = []string{
	string(StageNew),
	string(StageNegotiation),
	string(StageNotice7Days),
	string(StageNotice72h),
	string(StagePreCollection),
	string(StageCollection),
	string(StageLoss),
	string(StageResolved),
}

func (s Stage) Valid() bool { return stage.IndexOf(StageSequence, string(s)) >= 0 }

func (s Stage) Steps() []stage.Step { return stage.Classify(StageSequence, string(s)) }

// Perception is the collections-tracking companion of a loan request, at most
// one per request. Uniqueness is enforced at the application layer, not by a
// storage constraint.
type Perception struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PerceptionID string    `gorm:"column:perception_id;type:char(32);not null;uniqueIndex:ux_perceptions_perception_id" json:"perception_id"`
	// FK to loan_requests.id; the column keeps the original schema's name.
	LoanRequestID uint64    `gorm:"column:loan_id;not null;index" json:"-"`
	Stage         Stage     `gorm:"column:stage;size:20;default:'New'" json:"stage"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Perception) TableName() string { return "perceptions" }
