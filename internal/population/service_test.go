package population

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidateFilter_ClassRequired(t *testing.T) {
	err := ValidateFilter(FilterSpec{ProgramCourseIDs: []int{1}, PaperIDs: []int{1}, AcademicYearIDs: []int{1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateFilter_AllIDSetsAbsent(t *testing.T) {
	err := ValidateFilter(FilterSpec{ClassID: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateFilter_EmptyButPresentSetIsValid(t *testing.T) {
	// An empty-but-present id set is a legal "no candidates" query, not a
	// validation failure.
	err := ValidateFilter(FilterSpec{
		ClassID:          3,
		ProgramCourseIDs: []int{},
		PaperIDs:         []int{10},
		AcademicYearIDs:  []int{2025},
	})
	assert.NoError(t, err)
}

func TestValidateFilter_BadGender(t *testing.T) {
	err := ValidateFilter(FilterSpec{ClassID: 3, PaperIDs: []int{1}, Gender: "UNKNOWN"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIntersectRoster_ReportsNotFound(t *testing.T) {
	candidates := []Candidate{
		{StudentID: 1, UID: "X101"},
		{StudentID: 2, UID: "X102"},
		{StudentID: 3, UID: "X103"},
	}
	keys := []string{"x101", "X103", "X999"}

	matched, notFound := IntersectRoster(candidates, keys, AssignByUID)

	require.Len(t, matched, 2)
	assert.Equal(t, 1, matched[0].StudentID)
	assert.Equal(t, 3, matched[1].StudentID)
	assert.Equal(t, []string{"X999"}, notFound)
}

func TestIntersectRoster_CaseInsensitiveAndTrimmed(t *testing.T) {
	candidates := []Candidate{{StudentID: 1, UID: "  Ab12 "}}

	matched, notFound := IntersectRoster(candidates, []string{"aB12"}, AssignByUID)

	require.Len(t, matched, 1)
	assert.Empty(t, notFound)
}

func TestIntersectRoster_RegistrationNumberMode(t *testing.T) {
	candidates := []Candidate{
		{StudentID: 1, RegistrationNumber: "REG-1"},
		{StudentID: 2, RegistrationNumber: "", RollNumber: "ROLL-2"},
		{StudentID: 3, RegistrationNumber: "REG-3"},
	}

	matched, notFound := IntersectRoster(candidates, []string{"roll-2", "reg-3"}, AssignByRegistrationNumber)

	require.Len(t, matched, 2)
	assert.Equal(t, 2, matched[0].StudentID)
	assert.Equal(t, 3, matched[1].StudentID)
	assert.Empty(t, notFound)
}

func TestIntersectRoster_BlankCandidateKeysNeverMatch(t *testing.T) {
	candidates := []Candidate{{StudentID: 1, UID: ""}}

	matched, notFound := IntersectRoster(candidates, []string{""}, AssignByUID)

	assert.Empty(t, matched)
	// The blank roster key finds nothing and is reported as such.
	assert.Equal(t, []string{""}, notFound)
}

func TestComputeBreakdown_CountsPerCombinationInRequestOrder(t *testing.T) {
	candidates := []Candidate{
		{StudentID: 1, ProgramCourseID: 10, ShiftID: intPtr(1)},
		{StudentID: 2, ProgramCourseID: 10, ShiftID: intPtr(1)},
		{StudentID: 3, ProgramCourseID: 10, ShiftID: intPtr(2)},
		{StudentID: 4, ProgramCourseID: 20, ShiftID: intPtr(1)},
		{StudentID: 5, ProgramCourseID: 20, ShiftID: nil},
	}
	combinations := []Combination{
		{ProgramCourseID: 20, ShiftID: 1},
		{ProgramCourseID: 10, ShiftID: 1},
	}

	result := ComputeBreakdown(candidates, combinations)

	assert.Equal(t, 5, result.Total)
	require.Len(t, result.ByCombination, 2)
	// Result order matches the request's combination order.
	assert.Equal(t, 20, result.ByCombination[0].ProgramCourseID)
	assert.Equal(t, 1, result.ByCombination[0].Count)
	assert.Equal(t, 10, result.ByCombination[1].ProgramCourseID)
	assert.Equal(t, 2, result.ByCombination[1].Count)
	// Student 3 matches no requested combination, student 5 has no shift.
	assert.Equal(t, 2, result.UnassignedCount)
}

func TestComputeBreakdown_SumNeverExceedsTotal(t *testing.T) {
	candidates := []Candidate{
		{StudentID: 1, ProgramCourseID: 10, ShiftID: intPtr(1)},
		{StudentID: 2, ProgramCourseID: 10, ShiftID: nil},
	}
	combinations := []Combination{{ProgramCourseID: 10, ShiftID: 1}}

	result := ComputeBreakdown(candidates, combinations)

	sum := 0
	for _, cc := range result.ByCombination {
		sum += cc.Count
	}
	assert.LessOrEqual(t, sum, result.Total)
	assert.Equal(t, result.Total, sum+result.UnassignedCount)
}

func TestComputeBreakdown_AllShiftsMatchingMeansEquality(t *testing.T) {
	candidates := []Candidate{
		{StudentID: 1, ProgramCourseID: 10, ShiftID: intPtr(1)},
		{StudentID: 2, ProgramCourseID: 10, ShiftID: intPtr(1)},
	}
	combinations := []Combination{{ProgramCourseID: 10, ShiftID: 1}}

	result := ComputeBreakdown(candidates, combinations)

	assert.Equal(t, 2, result.ByCombination[0].Count)
	assert.Equal(t, result.Total, result.ByCombination[0].Count)
	assert.Zero(t, result.UnassignedCount)
}

func TestComputeBreakdown_NoCombinations(t *testing.T) {
	candidates := []Candidate{{StudentID: 1, ProgramCourseID: 10, ShiftID: intPtr(1)}}

	result := ComputeBreakdown(candidates, nil)

	assert.Equal(t, 1, result.Total)
	assert.Empty(t, result.ByCombination)
	assert.Equal(t, 1, result.UnassignedCount)
}
