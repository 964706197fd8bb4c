package seating

import (
	"fmt"
	"sort"

	"github.com/datachef-lab/academic360-sub015/internal/population"
)

// SortCandidates returns the candidates ordered ascending by their assignBy
// key, compared case-insensitively. Candidates with an empty key sort last
// and keep their original resolution order among themselves, so a rerun over
// the same inputs reproduces the same seating chart.
func SortCandidates(candidates []population.Candidate, mode population.AssignBy) []population.Candidate {
	sorted := make([]population.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		ki := population.NormalizeKey(sorted[i].Key(mode))
		kj := population.NormalizeKey(sorted[j].Key(mode))
		if ki == "" || kj == "" {
			// Non-empty keys come before empty ones; two empties keep order.
			return ki != "" && kj == ""
		}
		return ki < kj
	})
	return sorted
}

// AssignSeats deterministically places candidates into the given room plans.
// Candidates are walked in assignBy-key order; each room's benches fill
// sequentially (bench 1 seat 1, seat 2, ... then bench 2) until the room's
// capacity is exhausted, then the next room begins. Room order is the
// caller's scheduling decision and is never re-sorted. Candidates left over
// after the last room land in Unassigned.
func AssignSeats(candidates []population.Candidate, plans []RoomPlan, mode population.AssignBy) AssignmentResult {
	sorted := SortCandidates(candidates, mode)

	assigned := make([]SeatAssignment, 0, len(sorted))
	next := 0
	for _, plan := range plans {
		capacity := plan.Capacity()
		for seat := 0; seat < capacity && next < len(sorted); seat++ {
			c := sorted[next]
			bench := seat/plan.StudentsPerBench + 1
			seatInBench := seat%plan.StudentsPerBench + 1
			assigned = append(assigned, SeatAssignment{
				StudentID:       c.StudentID,
				UID:             c.UID,
				Name:            c.Name,
				ProgramCourseID: c.ProgramCourseID,
				ShiftID:         c.ShiftID,
				Email:           c.Email,
				FloorName:       plan.FloorName,
				RoomName:        plan.RoomName,
				BenchNumber:     bench,
				SeatInBench:     seatInBench,
				SeatLabel:       fmt.Sprintf("%s-B%d-S%d", plan.RoomName, bench, seatInBench),
			})
			next++
		}
	}

	unassigned := make([]population.Candidate, 0, len(sorted)-next)
	unassigned = append(unassigned, sorted[next:]...)
	return AssignmentResult{Assigned: assigned, Unassigned: unassigned}
}
