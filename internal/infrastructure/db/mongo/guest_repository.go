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

const collectionGuests = "guests"

type GuestRepository struct {
	col *mongo.Collection
}

func NewGuestRepository(db *mongo.Database) *GuestRepository {
	return &GuestRepository{col: db.Collection(collectionGuests)}
}

func (r *GuestRepository) Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	guest.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, guest); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("insert guest: %w", err)
	}
	return guest, nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id string) (*domain.Guest, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *GuestRepository) FindByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *GuestRepository) findOne(ctx context.Context, filter bson.M) (*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var guest domain.Guest
	if err := r.col.FindOne(ctx, filter).Decode(&guest); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("find guest: %w", err)
	}
	return &guest, nil
}

func (r *GuestRepository) List(ctx context.Context, filter ports.PageFilter) ([]*domain.Guest, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count guests: %w", err)
	}

	cur, err := r.col.Find(ctx, bson.M{}, pageOpts(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list guests: %w", err)
	}
	defer cur.Close(ctx)

	guests := []*domain.Guest{}
	if err := cur.All(ctx, &guests); err != nil {
		return nil, 0, fmt.Errorf("decode guests: %w", err)
	}
	return guests, total, nil
}

func (r *GuestRepository) Update(ctx context.Context, guest *domain.Guest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": guest.ID}, guest)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("update guest: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

// EnsureIndexes creates the unique index backing guest email uniqueness.
func (r *GuestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
