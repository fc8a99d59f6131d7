package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/utafrali/recipex/internal/domain"
)

// UserRepository implements repository.UserRepository backed by the
// users collection.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a user repository on the given database.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// FindByID retrieves a user by id. A missing document yields
// (nil, nil), not an error.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return &user, nil
}

// FindByEmail retrieves a user by exact email match on the embedded
// credentials document.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"username.email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// Save upserts a user document keyed by its id.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, opts); err != nil {
		return fmt.Errorf("save user %s: %w", user.ID, err)
	}
	return nil
}

// DeleteByID removes a user. Absence is not an error.
func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}
