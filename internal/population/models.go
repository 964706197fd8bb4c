package population

// Gender values as stored on student records. An empty string means the
// record carries no gender.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

// AssignBy selects the key used to order and match candidates.
type AssignBy string

const (
	AssignByUID                AssignBy = "UID"
	AssignByRegistrationNumber AssignBy = "REGISTRATION_NUMBER"
)

// Valid reports whether the mode is one of the two supported keys.
func (a AssignBy) Valid() bool {
	return a == AssignByUID || a == AssignByRegistrationNumber
}

// Candidate is a student eligible to sit a given exam instance. Candidates are
// computed fresh per request and never persisted by this engine.
type Candidate struct {
	StudentID             int    `bson:"student_id" json:"student_id"`                           // Opaque student record id
	UID                   string `bson:"uid" json:"uid"`                                         // Stable external identifier
	RegistrationNumber    string `bson:"registration_number" json:"registration_number"`         // May be empty
	RollNumber            string `bson:"roll_number" json:"roll_number"`                         // May be empty
	ProgramCourseID       int    `bson:"program_course_id" json:"program_course_id"`             // Program/course the student belongs to
	ShiftID               *int   `bson:"shift_id" json:"shift_id"`                               // Nil when the student has no shift
	Gender                string `bson:"gender" json:"gender"`                                   // MALE, FEMALE, OTHER or empty
	Name                  string `bson:"name" json:"name"`                                       // Student's full name
	Email                 string `bson:"email" json:"email"`                                     // For seat notifications
	Phone                 string `bson:"phone" json:"phone"`                                     // Contact number
	ExamApplicationNumber string `bson:"exam_application_number" json:"exam_application_number"` // May be empty
}

// Key returns the candidate's ordering/matching key for the given mode.
// REGISTRATION_NUMBER falls back to the roll number when no registration
// number is on record, since older cohorts only carry roll numbers.
func (c Candidate) Key(mode AssignBy) string {
	if mode == AssignByRegistrationNumber {
		if c.RegistrationNumber != "" {
			return c.RegistrationNumber
		}
		return c.RollNumber
	}
	return c.UID
}

// FilterSpec is the eligibility query for resolving a candidate population.
// A nil id slice means the field was absent from the request; an empty
// non-nil slice is a valid "no candidates" filter.
type FilterSpec struct {
	ClassID          int    `json:"class_id" validate:"required"`
	ProgramCourseIDs []int  `json:"program_course_ids"`
	PaperIDs         []int  `json:"paper_ids"`
	AcademicYearIDs  []int  `json:"academic_year_ids"`
	ShiftIDs         []int  `json:"shift_ids"` // Optional; absence means any shift
	Gender           string `json:"gender_filter" validate:"omitempty,oneof=MALE FEMALE OTHER"` // Optional; empty means any gender
}

// Combination is one allowed (program course, shift) pairing for a breakdown.
// The caller supplies the list explicitly instead of the engine crossing
// program courses with shifts, so invalid pairings never appear.
type Combination struct {
	ProgramCourseID int `json:"program_course_id"`
	ShiftID         int `json:"shift_id"`
}

// CombinationCount is the candidate count for one requested combination.
type CombinationCount struct {
	ProgramCourseID int `json:"program_course_id"`
	ShiftID         int `json:"shift_id"`
	Count           int `json:"count"`
}

// BreakdownResult is the capacity-planning output. UnassignedCount is the
// number of candidates matching none of the requested combinations (for
// example students with no shift), surfaced so totals always reconcile.
type BreakdownResult struct {
	Total           int                `json:"total"`
	ByCombination   []CombinationCount `json:"by_combination"`
	UnassignedCount int                `json:"unassigned_count"`
}

// RosterRowError reports a roster row that could not be used. Row indexes are
// 1-based as shown in the spreadsheet.
type RosterRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Resolution is the outcome of resolving a population, including roster
// reconciliation data when a roster was supplied.
type Resolution struct {
	Candidates   []Candidate      `json:"candidates"`
	NotFound     []string         `json:"not_found"`     // Roster keys with no matching candidate
	RosterErrors []RosterRowError `json:"roster_errors"` // Unusable roster rows
}
