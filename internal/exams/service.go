package exams

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ExamService detects duplicate exam definitions before scheduling.
type ExamService struct {
	repo   *ExamRepository
	logger *zap.Logger
}

// NewExamService creates a new exam service.
func NewExamService(repo *ExamRepository, logger *zap.Logger) *ExamService {
	return &ExamService{repo: repo, logger: logger}
}

// CheckDuplicate compares a proposed exam definition against the committed
// exams for the same class and years. The first match wins; when nothing
// matches the proposal is clear to schedule.
func (s *ExamService) CheckDuplicate(ctx context.Context, proposed ExamDefinition) (DuplicateCheckResult, error) {
	existing, err := s.repo.FindExams(ctx, proposed.ClassID, proposed.AcademicYearIDs)
	if err != nil {
		return DuplicateCheckResult{}, fmt.Errorf("failed to load existing exams: %w", err)
	}

	for _, exam := range existing {
		if IsDuplicate(proposed, exam) {
			id := exam.ExamID
			s.logger.Info("duplicate exam detected",
				zap.Int("class_id", proposed.ClassID),
				zap.Int("duplicate_exam_id", id))
			return DuplicateCheckResult{IsDuplicate: true, DuplicateExamID: &id}, nil
		}
	}
	return DuplicateCheckResult{IsDuplicate: false}, nil
}

// IsDuplicate reports whether two definitions describe the same exam: same
// class, overlapping paper set, overlapping academic-year set, and at least
// one subject scheduled at the identical time in both. The match is
// conservative; the same subject at a different slot is not a duplicate.
func IsDuplicate(proposed, existing ExamDefinition) bool {
	if proposed.ClassID != existing.ClassID {
		return false
	}
	if !intersects(proposed.PaperIDs, existing.PaperIDs) {
		return false
	}
	if !intersects(proposed.AcademicYearIDs, existing.AcademicYearIDs) {
		return false
	}
	for _, p := range proposed.Windows {
		for _, e := range existing.Windows {
			if p.SubjectID == e.SubjectID && p.StartTime.Equal(e.StartTime) && p.EndTime.Equal(e.EndTime) {
				return true
			}
		}
	}
	return false
}

func intersects(a, b []int) bool {
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		if set[v] {
			return true
		}
	}
	return false
}
