package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

const (
	collectionRoomTypes = "room_types"
	collectionRooms     = "rooms"
)

type RoomTypeRepository struct {
	col *mongo.Collection
}

func NewRoomTypeRepository(db *mongo.Database) *RoomTypeRepository {
	return &RoomTypeRepository{col: db.Collection(collectionRoomTypes)}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rt.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, rt); err != nil {
		return nil, fmt.Errorf("insert room type: %w", err)
	}
	return rt, nil
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, id string) (*domain.RoomType, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rt domain.RoomType
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("find room type: %w", err)
	}
	return &rt, nil
}

func (r *RoomTypeRepository) List(ctx context.Context, filter ports.PageFilter) ([]*domain.RoomType, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count room types: %w", err)
	}

	cur, err := r.col.Find(ctx, bson.M{}, pageOpts(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list room types: %w", err)
	}
	defer cur.Close(ctx)

	types := []*domain.RoomType{}
	if err := cur.All(ctx, &types); err != nil {
		return nil, 0, fmt.Errorf("decode room types: %w", err)
	}
	return types, total, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": rt.ID}, rt)
	if err != nil {
		return fmt.Errorf("update room type: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomTypeNotFound
	}
	return nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete room type: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomTypeNotFound
	}
	return nil
}

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	room.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, room); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomNumberExists
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}
	return room, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *RoomRepository) FindByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	return r.findOne(ctx, bson.M{"room_number": roomNumber})
}

func (r *RoomRepository) findOne(ctx context.Context, filter bson.M) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var room domain.Room
	if err := r.col.FindOne(ctx, filter).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, filter ports.ListRoomsFilter) ([]*domain.Room, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.RoomTypeID != "" {
		query["room_type_id"] = filter.RoomTypeID
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count rooms: %w", err)
	}

	cur, err := r.col.Find(ctx, query, pageOpts(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms: %w", err)
	}
	defer cur.Close(ctx)

	rooms := []*domain.Room{}
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, 0, fmt.Errorf("decode rooms: %w", err)
	}
	return rooms, total, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": room.ID}, room)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrRoomNumberExists
		}
		return fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// EnsureIndexes creates the unique index backing room number uniqueness and
// the filter indexes used by List.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "room_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "room_type_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
