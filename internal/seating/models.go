package seating

import (
	"github.com/datachef-lab/academic360-sub015/internal/population"
)

// SeatAssignment is one candidate placed on a bench seat. BenchNumber and
// SeatInBench are 1-based; SeatLabel is the printable form used on seating
// charts.
type SeatAssignment struct {
	StudentID       int    `json:"student_id"`
	UID             string `json:"uid"`
	Name            string `json:"name"`
	ProgramCourseID int    `json:"program_course_id"`
	ShiftID         *int   `json:"shift_id"`
	Email           string `json:"email"`
	FloorName       string `json:"floor_name"`
	RoomName        string `json:"room_name"`
	BenchNumber     int    `json:"bench_number"`
	SeatInBench     int    `json:"seat_in_bench"`
	SeatLabel       string `json:"seat_label"`
}

// RoomPlan is an operator-chosen room resolved to its effective geometry,
// ready for sequential filling. Plans are consumed in the order supplied.
type RoomPlan struct {
	FloorName        string `json:"floor_name"`
	RoomName         string `json:"room_name"`
	NumberOfBenches  int    `json:"number_of_benches"`
	StudentsPerBench int    `json:"students_per_bench"`
}

// Capacity is the number of seats this plan contributes. A plan with no
// benches or a non-positive per-bench value contributes nothing rather than
// erroring.
func (r RoomPlan) Capacity() int {
	if r.NumberOfBenches <= 0 || r.StudentsPerBench <= 0 {
		return 0
	}
	return r.NumberOfBenches * r.StudentsPerBench
}

// AssignmentResult is the outcome of one assignment run. Candidates that did
// not fit stay in Unassigned; the caller decides whether to add rooms and
// retry. len(Assigned)+len(Unassigned) always equals the candidate count.
type AssignmentResult struct {
	Assigned   []SeatAssignment       `json:"assigned"`
	Unassigned []population.Candidate `json:"unassigned"`
}

// SeatingResponse is the full getStudentsWithSeats payload, including roster
// reconciliation so the UI can render partial-success states.
type SeatingResponse struct {
	Assigned     []SeatAssignment            `json:"assigned"`
	Unassigned   []population.Candidate      `json:"unassigned"`
	NotFound     []string                    `json:"not_found"`
	RosterErrors []population.RosterRowError `json:"roster_errors"`
}
