package exams

import (
	"github.com/datachef-lab/academic360-sub015/internal/rooms"
)

// ExamDefinition describes a proposed or committed examination: the class it
// targets, the paper and academic-year sets it covers, and one time window
// per subject.
type ExamDefinition struct {
	ExamID          int                       `bson:"exam_id" json:"exam_id,omitempty"` // Zero for a proposal not yet committed
	Name            string                    `bson:"name" json:"name"`                 // Display name
	ClassID         int                       `bson:"class_id" json:"class_id" validate:"required"`
	PaperIDs        []int                     `bson:"paper_ids" json:"paper_ids" validate:"required,min=1"`
	AcademicYearIDs []int                     `bson:"academic_year_ids" json:"academic_year_ids" validate:"required,min=1"`
	Windows         []rooms.ExamSubjectWindow `bson:"windows" json:"windows" validate:"required,min=1"`
}

// DuplicateCheckResult reports whether a proposal collides with an existing
// exam. DuplicateExamID is only set when IsDuplicate is true.
type DuplicateCheckResult struct {
	IsDuplicate     bool `json:"is_duplicate"`
	DuplicateExamID *int `json:"duplicate_exam_id,omitempty"`
}
