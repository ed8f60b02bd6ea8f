package users

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/cinepick/cinepick/pkg/errors"
)

// Repository handles all reads and writes against the users collection.
// Every mutation is one document update; the storage layer's per-document
// atomicity is the only consistency guarantee.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and ensures the unique username
// index that backs duplicate-registration detection.
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("users")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return &Repository{collection: collection}
}

// CreateUser inserts a new user. A duplicate username surfaces as
// apperrors.ErrDuplicate via the unique index.
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	user.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

// FindByUsername returns nil, nil when no user matches.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByID returns nil, nil when no user matches.
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user id format")
	}

	var user User
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// AddFavorite appends a movie ID to the favorites list. Favorites keep
// insertion order, so duplicates are rejected up front rather than relying
// on $addToSet.
func (r *Repository) AddFavorite(ctx context.Context, userID string, movieID int) ([]int, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	if contains(user.FavoriteMovies, movieID) {
		return nil, apperrors.ErrDuplicate
	}

	updated, err := r.findOneAndUpdate(ctx, userID, bson.M{
		"$push": bson.M{"favoriteMovies": movieID},
	})
	if err != nil {
		return nil, err
	}
	return updated.FavoriteMovies, nil
}

// AddToWatchlist adds a movie ID with set semantics; adding an ID that is
// already present changes nothing.
func (r *Repository) AddToWatchlist(ctx context.Context, userID string, movieID int) ([]int, error) {
	updated, err := r.findOneAndUpdate(ctx, userID, bson.M{
		"$addToSet": bson.M{"watchlist": movieID},
	})
	if err != nil {
		return nil, err
	}
	return updated.Watchlist, nil
}

// RemoveFromWatchlist pulls a movie ID; removing an absent ID is a no-op.
func (r *Repository) RemoveFromWatchlist(ctx context.Context, userID string, movieID int) ([]int, error) {
	updated, err := r.findOneAndUpdate(ctx, userID, bson.M{
		"$pull": bson.M{"watchlist": movieID},
	})
	if err != nil {
		return nil, err
	}
	return updated.Watchlist, nil
}

// MarkWatched records a movie as watched and drops it from the watchlist in
// the same document update.
func (r *Repository) MarkWatched(ctx context.Context, userID string, movieID int) error {
	_, err := r.findOneAndUpdate(ctx, userID, bson.M{
		"$addToSet": bson.M{"preferences.watchedMovies": movieID},
		"$pull":     bson.M{"watchlist": movieID},
	})
	return err
}

// UpdatePreferences replaces the whole preferences sub-document.
func (r *Repository) UpdatePreferences(ctx context.Context, userID string, prefs *Preferences) error {
	_, err := r.findOneAndUpdate(ctx, userID, bson.M{
		"$set": bson.M{"preferences": prefs},
	})
	return err
}

func (r *Repository) findOneAndUpdate(ctx context.Context, userID string, update bson.M) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user id format")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user User
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
