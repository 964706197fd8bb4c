package rooms

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const activeRoomsCacheKey = "rooms:active"

// RoomService exposes the room catalog and conflict-free room filtering.
// Catalog reads go through a short-lived in-process cache since the room list
// changes rarely but is consulted on every planning request.
type RoomService struct {
	repo   *RoomRepository
	cache  *cache.Cache
	logger *zap.Logger
}

// NewRoomService creates a new room service.
func NewRoomService(repo *RoomRepository, logger *zap.Logger) *RoomService {
	return &RoomService{
		repo:   repo,
		cache:  cache.New(time.Minute, 5*time.Minute),
		logger: logger,
	}
}

// ListRooms returns all active rooms, served from cache when fresh.
func (s *RoomService) ListRooms(ctx context.Context) ([]RoomProfile, error) {
	if cached, found := s.cache.Get(activeRoomsCacheKey); found {
		return cached.([]RoomProfile), nil
	}
	rooms, err := s.repo.FindActiveRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	s.cache.Set(activeRoomsCacheKey, rooms, cache.DefaultExpiration)
	return rooms, nil
}

// GetRoom returns a room profile by id, or nil when unknown.
func (s *RoomService) GetRoom(ctx context.Context, roomID int) (*RoomProfile, error) {
	key := fmt.Sprintf("rooms:%d", roomID)
	if cached, found := s.cache.Get(key); found {
		return cached.(*RoomProfile), nil
	}
	room, err := s.repo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room != nil {
		s.cache.Set(key, room, cache.DefaultExpiration)
	}
	return room, nil
}

// EligibleRooms returns the active rooms whose booking calendar has no
// conflict with any of the proposed subject windows. Rooms with no bookings
// are trivially eligible. The booking calendar is read-only here; committing
// the new exam's bookings is a later scheduling step.
func (s *RoomService) EligibleRooms(ctx context.Context, proposed []ExamSubjectWindow) ([]RoomProfile, error) {
	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	eligible := make([]RoomProfile, 0, len(rooms))
	for _, room := range rooms {
		booked, err := s.repo.FindBookedWindows(ctx, room.RoomID)
		if err != nil {
			return nil, fmt.Errorf("failed to read bookings for room %d: %w", room.RoomID, err)
		}
		if !HasConflict(booked, proposed) {
			eligible = append(eligible, room)
		}
	}

	s.logger.Info("filtered eligible rooms",
		zap.Int("proposed_windows", len(proposed)),
		zap.Int("eligible", len(eligible)),
		zap.Int("total_active", len(rooms)))
	return eligible, nil
}

// HasConflict reports whether any booked window overlaps any proposed window.
// The pairwise check is fine at realistic per-room booking counts; a sorted
// sweep would only pay off at much larger calendars.
func HasConflict(booked, proposed []ExamSubjectWindow) bool {
	for _, b := range booked {
		for _, p := range proposed {
			if b.Overlaps(p) {
				return true
			}
		}
	}
	return false
}
