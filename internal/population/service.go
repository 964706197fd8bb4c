package population

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ErrValidation marks request validation failures. Handlers translate it to
// an HTTP 400; every other condition travels as data in a success response.
var ErrValidation = errors.New("validation failed")

// PopulationService resolves eligible candidate populations and computes
// capacity breakdowns. It holds no state between calls.
type PopulationService struct {
	repo   *PopulationRepository
	logger *zap.Logger
	sink   ProgressSink
}

// NewPopulationService creates a new population service.
func NewPopulationService(repo *PopulationRepository, logger *zap.Logger, sink ProgressSink) *PopulationService {
	return &PopulationService{repo: repo, logger: logger, sink: sink}
}

// ValidateFilter enforces the request-level rules: class is required, and the
// three id sets must not all be absent. An empty-but-present id set is valid
// and simply resolves to zero candidates.
func ValidateFilter(f FilterSpec) error {
	if f.ClassID == 0 {
		return fmt.Errorf("%w: class_id is required", ErrValidation)
	}
	if f.ProgramCourseIDs == nil && f.PaperIDs == nil && f.AcademicYearIDs == nil {
		return fmt.Errorf("%w: program_course_ids, paper_ids and academic_year_ids are all missing", ErrValidation)
	}
	if f.Gender != "" && f.Gender != GenderMale && f.Gender != GenderFemale && f.Gender != GenderOther {
		return fmt.Errorf("%w: invalid gender_filter %q", ErrValidation, f.Gender)
	}
	return nil
}

// Resolve computes the eligible population for the filter. When roster is
// non-nil the population is narrowed to the keys present in both the roster
// and the resolved set; roster keys with no matching candidate are reported
// in Resolution.NotFound rather than dropped silently. The result preserves
// the store's resolution order; sorting is the seat assigner's concern.
func (s *PopulationService) Resolve(ctx context.Context, f FilterSpec, roster io.Reader, mode AssignBy) (*Resolution, error) {
	if err := ValidateFilter(f); err != nil {
		return nil, err
	}
	if roster != nil && !mode.Valid() {
		return nil, fmt.Errorf("%w: assign_by must be UID or REGISTRATION_NUMBER when a roster is attached", ErrValidation)
	}

	candidates, err := s.repo.FindCandidates(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve population: %w", err)
	}

	res := &Resolution{Candidates: candidates, NotFound: []string{}, RosterErrors: []RosterRowError{}}
	if roster == nil {
		s.logger.Info("population resolved",
			zap.Int("class_id", f.ClassID),
			zap.Int("candidates", len(candidates)))
		return res, nil
	}

	keys, rowErrors, err := ParseRoster(roster, s.sink)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	matched, notFound := IntersectRoster(candidates, keys, mode)
	res.Candidates = matched
	res.NotFound = notFound
	if rowErrors != nil {
		res.RosterErrors = rowErrors
	}

	s.logger.Info("population resolved with roster",
		zap.Int("class_id", f.ClassID),
		zap.Int("candidates", len(matched)),
		zap.Int("roster_keys", len(keys)),
		zap.Int("not_found", len(notFound)),
		zap.Int("roster_errors", len(rowErrors)))
	return res, nil
}

// IntersectRoster narrows candidates to those whose key (per mode) appears in
// the roster. Keys are compared case-insensitively and whitespace-trimmed.
// Candidate order is preserved. Roster keys matching no candidate are
// returned in roster order.
func IntersectRoster(candidates []Candidate, keys []string, mode AssignBy) ([]Candidate, []string) {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[NormalizeKey(k)] = false
	}

	matched := make([]Candidate, 0, len(keys))
	for _, c := range candidates {
		k := NormalizeKey(c.Key(mode))
		if k == "" {
			continue
		}
		if _, ok := wanted[k]; ok {
			matched = append(matched, c)
			wanted[k] = true
		}
	}

	notFound := []string{}
	for _, k := range keys {
		if !wanted[NormalizeKey(k)] {
			notFound = append(notFound, k)
		}
	}
	return matched, notFound
}

// ComputeBreakdown counts candidates per requested (program course, shift)
// combination. The result order matches the input combination order so the
// caller can render it stably. Candidates matching no requested combination
// (including those with no shift) are surfaced via UnassignedCount.
func ComputeBreakdown(candidates []Candidate, combinations []Combination) BreakdownResult {
	result := BreakdownResult{
		Total:         len(candidates),
		ByCombination: make([]CombinationCount, len(combinations)),
	}

	index := make(map[Combination]int, len(combinations))
	for i, combo := range combinations {
		result.ByCombination[i] = CombinationCount{
			ProgramCourseID: combo.ProgramCourseID,
			ShiftID:         combo.ShiftID,
		}
		index[combo] = i
	}

	for _, c := range candidates {
		if c.ShiftID == nil {
			result.UnassignedCount++
			continue
		}
		i, ok := index[Combination{ProgramCourseID: c.ProgramCourseID, ShiftID: *c.ShiftID}]
		if !ok {
			result.UnassignedCount++
			continue
		}
		result.ByCombination[i].Count++
	}
	return result
}
