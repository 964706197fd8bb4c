package seating

import (
	"context"
	"fmt"
	"io"

	"github.com/datachef-lab/academic360-sub015/internal/population"
	"github.com/datachef-lab/academic360-sub015/internal/rooms"
	"go.uber.org/zap"
)

// SeatingService orchestrates seat assignment: resolve the population, turn
// the operator's room choices into effective plans, run the engine. Results
// are returned to the caller for explicit persistence; nothing here mutates
// shared state, so computing a plan and committing it stay decoupled.
type SeatingService struct {
	populations *population.PopulationService
	rooms       *rooms.RoomService
	logger      *zap.Logger
}

// NewSeatingService creates a new seating service.
func NewSeatingService(populations *population.PopulationService, roomService *rooms.RoomService, logger *zap.Logger) *SeatingService {
	return &SeatingService{populations: populations, rooms: roomService, logger: logger}
}

// AssignWithFilter resolves the eligible population for the filter (narrowed
// by the optional roster) and assigns every candidate a seat in the supplied
// rooms, in the supplied room order. Overflow is not an error; leftover
// candidates come back in Unassigned.
func (s *SeatingService) AssignWithFilter(ctx context.Context, f population.FilterSpec, mode population.AssignBy, inputs []rooms.RoomAssignmentInput, roster io.Reader) (*SeatingResponse, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: assign_by must be UID or REGISTRATION_NUMBER", population.ErrValidation)
	}

	res, err := s.populations.Resolve(ctx, f, roster, mode)
	if err != nil {
		return nil, err
	}

	plans, err := s.resolvePlans(ctx, inputs)
	if err != nil {
		return nil, err
	}

	result := AssignSeats(res.Candidates, plans, mode)
	s.logger.Info("seating plan computed",
		zap.Int("class_id", f.ClassID),
		zap.Int("candidates", len(res.Candidates)),
		zap.Int("assigned", len(result.Assigned)),
		zap.Int("unassigned", len(result.Unassigned)),
		zap.Int("rooms", len(plans)))

	return &SeatingResponse{
		Assigned:     result.Assigned,
		Unassigned:   result.Unassigned,
		NotFound:     res.NotFound,
		RosterErrors: res.RosterErrors,
	}, nil
}

// resolvePlans turns room assignment inputs into effective plans. The
// per-bench value is the operator's override when present, otherwise the
// room's catalog default. An unknown room with no override contributes no
// seats instead of failing the whole run.
func (s *SeatingService) resolvePlans(ctx context.Context, inputs []rooms.RoomAssignmentInput) ([]RoomPlan, error) {
	plans := make([]RoomPlan, 0, len(inputs))
	for _, input := range inputs {
		perBench := 0
		if input.StudentsPerBenchOverride != nil {
			perBench = *input.StudentsPerBenchOverride
		} else {
			profile, err := s.rooms.GetRoom(ctx, input.RoomID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve room %d: %w", input.RoomID, err)
			}
			if profile != nil {
				perBench = profile.DefaultStudentsPerBench
			} else {
				s.logger.Warn("room not in catalog, treating as zero capacity", zap.Int("room_id", input.RoomID))
			}
		}
		plans = append(plans, RoomPlan{
			FloorName:        input.FloorName,
			RoomName:         input.RoomName,
			NumberOfBenches:  input.NumberOfBenches,
			StudentsPerBench: perBench,
		})
	}
	return plans, nil
}
