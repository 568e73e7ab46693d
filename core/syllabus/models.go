package syllabus

import (
	"time"

	"github.com/darasa-app/darasa/core"
)

// Topic difficulties
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Exam types
type ExamType string

const (
	ExamInternal ExamType = "internal"
	ExamMidterm  ExamType = "midterm"
	ExamFinal    ExamType = "final"
	ExamSlip     ExamType = "slip"
)

type Topic struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Weightage   int        `json:"weightage" validate:"min=1,max=10"`
	Duration    int        `json:"duration" validate:"min=1"` // minutes
	IsImportant bool       `json:"is_important"`
}

// Unit groups topics. Topic order is meaningful (display and export order)
// and is preserved by every operation.
type Unit struct {
	ID             string               `json:"id"`
	Title          string               `json:"title" validate:"required"`
	Topics         []Topic              `json:"topics" validate:"dive"`
	ReferenceFiles []core.ReferenceFile `json:"reference_files,omitempty"`
}

type Syllabus struct {
	ID            string    `json:"id"`
	Subject       string    `json:"subject"`
	Description   string    `json:"description"`
	ExamType      ExamType  `json:"exam_type"`
	Units         []Unit    `json:"units"`
	TotalDuration int       `json:"total_duration"` // minutes; derived, never caller-set
	CreatedAt     time.Time `json:"created_at"`     // UTC
	UpdatedAt     time.Time `json:"updated_at"`     // UTC
}

// NewSyllabus contains information needed to create a new Syllabus.
// TotalDuration is not accepted: it is always derived from the units.
type NewSyllabus struct {
	Subject     string   `json:"subject" validate:"required"`
	Description string   `json:"description"`
	ExamType    ExamType `json:"exam_type" validate:"required,oneof=internal midterm final slip"`
	Units       []Unit   `json:"units" validate:"required,min=1,dive"`
}

func (ns *NewSyllabus) Validate() error {
	ns.Subject = core.CleanString(ns.Subject)
	ns.Description = core.CleanString(ns.Description)
	return core.Validate.Struct(ns)
}
