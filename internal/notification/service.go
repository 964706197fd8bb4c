package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/datachef-lab/academic360-sub015/internal/config"
	"github.com/datachef-lab/academic360-sub015/internal/seating"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// NotificationService emails assigned candidates their seat once a seating
// plan is accepted.
type NotificationService struct {
	repo         *NotificationRepository
	emailService *config.EmailService
	logger       *zap.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo *NotificationRepository, emailService *config.EmailService, logger *zap.Logger) *NotificationService {
	return &NotificationService{repo: repo, emailService: emailService, logger: logger}
}

// SendSeatNotices emails each assigned candidate their room, bench and seat.
// Per-recipient failures are collected and reported, never fatal; candidates
// without an email on record are counted as skipped. The run is persisted for
// audit.
func (s *NotificationService) SendSeatNotices(ctx context.Context, examName string, assigned []seating.SeatAssignment) (*SendReport, error) {
	report := &SendReport{Total: len(assigned), SentTo: []string{}, Failed: []string{}}

	for _, seat := range assigned {
		if seat.Email == "" {
			report.Skipped++
			continue
		}
		subject := fmt.Sprintf("Your seat for %s", examName)
		body := seatNoticeBody(examName, seat)
		if err := s.emailService.SendEmail(seat.Email, subject, body); err != nil {
			s.logger.Warn("failed to send seat notice", zap.String("email", seat.Email), zap.Error(err))
			report.Failed = append(report.Failed, seat.Email)
			continue
		}
		report.SentTo = append(report.SentTo, seat.Email)
	}

	run := &SeatNoticeRun{
		ID:        primitive.NewObjectID(),
		ExamName:  examName,
		Total:     report.Total,
		SentTo:    report.SentTo,
		Failed:    report.Failed,
		Skipped:   report.Skipped,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record notification run: %w", err)
	}

	s.logger.Info("seat notices sent",
		zap.String("exam", examName),
		zap.Int("sent", len(report.SentTo)),
		zap.Int("failed", len(report.Failed)),
		zap.Int("skipped", report.Skipped))
	return report, nil
}

func seatNoticeBody(examName string, seat seating.SeatAssignment) string {
	location := seat.RoomName
	if seat.FloorName != "" {
		location = fmt.Sprintf("%s, %s", seat.FloorName, seat.RoomName)
	}
	return fmt.Sprintf(
		"<p>Dear %s,</p><p>Your seat for <b>%s</b> is <b>%s</b> (%s, bench %d, seat %d).</p><p>Please arrive 15 minutes early and carry your admit card.</p>",
		seat.Name, examName, seat.SeatLabel, location, seat.BenchNumber, seat.SeatInBench,
	)
}
