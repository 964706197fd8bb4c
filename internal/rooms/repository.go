package rooms

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository handles DB operations for rooms and their booking calendar.
type RoomRepository struct {
	roomsCollection    *mongo.Collection
	bookingsCollection *mongo.Collection
}

// NewRoomRepository creates a new repository for room and booking queries.
func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{
		roomsCollection:    db.Collection("rooms"),
		bookingsCollection: db.Collection("room_bookings"),
	}
}

// FindActiveRooms returns all rooms available for scheduling.
func (r *RoomRepository) FindActiveRooms(ctx context.Context) ([]RoomProfile, error) {
	cursor, err := r.roomsCollection.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	var rooms []RoomProfile
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []RoomProfile{}
	}
	return rooms, nil
}

// FindRoomByID returns a room by id, or nil when it does not exist.
func (r *RoomRepository) FindRoomByID(ctx context.Context, roomID int) (*RoomProfile, error) {
	var room RoomProfile
	err := r.roomsCollection.FindOne(ctx, bson.M{"room_id": roomID}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// bookingDocument is one committed exam booking on a room.
type bookingDocument struct {
	RoomID int               `bson:"room_id"`
	Window ExamSubjectWindow `bson:",inline"`
}

// FindBookedWindows returns the committed exam bookings for a room.
func (r *RoomRepository) FindBookedWindows(ctx context.Context, roomID int) ([]ExamSubjectWindow, error) {
	cursor, err := r.bookingsCollection.Find(ctx, bson.M{"room_id": roomID})
	if err != nil {
		return nil, err
	}
	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	windows := make([]ExamSubjectWindow, 0, len(docs))
	for _, d := range docs {
		windows = append(windows, d.Window)
	}
	return windows, nil
}
