package exams

import (
	"testing"
	"time"

	"github.com/datachef-lab/academic360-sub015/internal/rooms"
	"github.com/stretchr/testify/assert"
)

func window(subjectID int, start, end string) rooms.ExamSubjectWindow {
	s, _ := time.Parse(time.RFC3339, start)
	e, _ := time.Parse(time.RFC3339, end)
	return rooms.ExamSubjectWindow{SubjectID: subjectID, StartTime: s, EndTime: e}
}

func baseExam() ExamDefinition {
	return ExamDefinition{
		ExamID:          42,
		ClassID:         3,
		PaperIDs:        []int{10, 11},
		AcademicYearIDs: []int{2026},
		Windows: []rooms.ExamSubjectWindow{
			window(7, "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z"),
		},
	}
}

func TestIsDuplicate_ExactWindowMatch(t *testing.T) {
	existing := baseExam()
	proposed := ExamDefinition{
		ClassID:         3,
		PaperIDs:        []int{11, 12}, // overlapping, not identical
		AcademicYearIDs: []int{2026},
		Windows: []rooms.ExamSubjectWindow{
			window(7, "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z"),
		},
	}

	assert.True(t, IsDuplicate(proposed, existing))
}

func TestIsDuplicate_DifferentStartTimeIsNotDuplicate(t *testing.T) {
	// Same subject, class, papers and years, shifted by an hour: the match is
	// conservative and lets it through.
	existing := baseExam()
	proposed := baseExam()
	proposed.ExamID = 0
	proposed.Windows = []rooms.ExamSubjectWindow{
		window(7, "2026-03-10T11:00:00Z", "2026-03-10T13:00:00Z"),
	}

	assert.False(t, IsDuplicate(proposed, existing))
}

func TestIsDuplicate_DifferentClass(t *testing.T) {
	existing := baseExam()
	proposed := baseExam()
	proposed.ClassID = 4

	assert.False(t, IsDuplicate(proposed, existing))
}

func TestIsDuplicate_DisjointPaperSets(t *testing.T) {
	existing := baseExam()
	proposed := baseExam()
	proposed.PaperIDs = []int{98, 99}

	assert.False(t, IsDuplicate(proposed, existing))
}

func TestIsDuplicate_DisjointAcademicYears(t *testing.T) {
	existing := baseExam()
	proposed := baseExam()
	proposed.AcademicYearIDs = []int{2027}

	assert.False(t, IsDuplicate(proposed, existing))
}

func TestIsDuplicate_DifferentSubjectSameSlot(t *testing.T) {
	existing := baseExam()
	proposed := baseExam()
	proposed.Windows = []rooms.ExamSubjectWindow{
		window(8, "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z"),
	}

	assert.False(t, IsDuplicate(proposed, existing))
}

func TestIsDuplicate_AnyWindowPairSuffices(t *testing.T) {
	existing := baseExam()
	proposed := baseExam()
	proposed.Windows = []rooms.ExamSubjectWindow{
		window(9, "2026-03-11T10:00:00Z", "2026-03-11T12:00:00Z"),
		window(7, "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z"),
	}

	assert.True(t, IsDuplicate(proposed, existing))
}
