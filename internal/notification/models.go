package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeatNoticeRun is the audit record of one batch of seat-notification emails.
type SeatNoticeRun struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"` // Unique identifier for the run
	ExamName  string             `bson:"exam_name"`     // Exam the seating plan belongs to
	Total     int                `bson:"total"`         // Number of assigned candidates in the batch
	SentTo    []string           `bson:"sent_to"`       // Emails successfully delivered to
	Failed    []string           `bson:"failed"`        // Emails that could not be delivered
	Skipped   int                `bson:"skipped"`       // Candidates with no email on record
	CreatedAt time.Time          `bson:"created_at"`    // When the run happened
}

// SendReport is returned to the caller after a notification run.
type SendReport struct {
	Total   int      `json:"total"`
	SentTo  []string `json:"sent_to"`
	Failed  []string `json:"failed"`
	Skipped int      `json:"skipped"`
}
