package rooms

import "time"

// RoomProfile represents a physical exam room.
type RoomProfile struct {
	RoomID                  int    `bson:"room_id" json:"room_id"`                                       // Unique identifier for the room
	FloorID                 *int   `bson:"floor_id" json:"floor_id"`                                     // Nil when the building has no floor records
	FloorName               string `bson:"floor_name" json:"floor_name"`                                 // May be empty
	RoomName                string `bson:"room_name" json:"room_name"`                                   // Room name/number
	NumberOfBenches         int    `bson:"number_of_benches" json:"number_of_benches"`                   // Benches physically present
	DefaultStudentsPerBench int    `bson:"default_students_per_bench" json:"default_students_per_bench"` // Seats per bench unless overridden
	IsActive                bool   `bson:"is_active" json:"is_active"`                                   // Inactive rooms are never scheduled
}

// DefaultCapacity is the room's seat count without any per-exam override.
func (r RoomProfile) DefaultCapacity() int {
	return r.NumberOfBenches * r.DefaultStudentsPerBench
}

// ExamSubjectWindow is one subject's time slot within a proposed exam.
// Windows are half-open: a booking ending at 12:00 does not conflict with a
// proposal starting at 12:00.
type ExamSubjectWindow struct {
	SubjectID int       `bson:"subject_id" json:"subject_id"`
	StartTime time.Time `bson:"start_time" json:"start_time"`
	EndTime   time.Time `bson:"end_time" json:"end_time"`
}

// Overlaps reports whether two half-open windows intersect.
func (w ExamSubjectWindow) Overlaps(other ExamSubjectWindow) bool {
	return w.StartTime.Before(other.EndTime) && other.StartTime.Before(w.EndTime)
}

// RoomAssignmentInput is an operator's chosen room for seat assignment, with
// an optional per-bench override replacing the room's default for this exam
// only. Room order in the request is a scheduling decision and is preserved.
type RoomAssignmentInput struct {
	RoomID                   int    `json:"room_id"`
	FloorName                string `json:"floor_name"`
	RoomName                 string `json:"room_name"`
	NumberOfBenches          int    `json:"number_of_benches"`
	StudentsPerBenchOverride *int   `json:"students_per_bench_override"`
}

// EffectiveStudentsPerBench resolves the per-bench seat count for this
// assignment, falling back to the room's default when no override is set.
func (r RoomAssignmentInput) EffectiveStudentsPerBench(defaultPerBench int) int {
	if r.StudentsPerBenchOverride != nil {
		return *r.StudentsPerBenchOverride
	}
	return defaultPerBench
}
