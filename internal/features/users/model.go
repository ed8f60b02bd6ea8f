package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the single persisted document per account. Favorites, watchlist
// and preferences all live on it; mutations are single-document updates
// with last-write-wins semantics.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username       string             `bson:"username" json:"username"`
	Password       string             `bson:"password" json:"-"`
	FavoriteMovies []int              `bson:"favoriteMovies" json:"favoriteMovies"`
	Watchlist      []int              `bson:"watchlist" json:"watchlist"`
	Preferences    Preferences        `bson:"preferences" json:"preferences"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// Preferences drives personalized recommendations.
type Preferences struct {
	Genres           []int     `bson:"genres" json:"genres"`
	MinRating        float64   `bson:"minRating" json:"minRating"`
	ReleaseYearRange YearRange `bson:"releaseYearRange" json:"releaseYearRange"`
	WatchedMovies    []int     `bson:"watchedMovies" json:"watchedMovies"`
}

type YearRange struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// MovieIDRequest is the payload for favorites/watchlist/watched mutations.
type MovieIDRequest struct {
	MovieID int `json:"movieId"`
}

// MovieStatus reports how a single movie relates to the caller's collections.
type MovieStatus struct {
	IsFavorite  bool `json:"isFavorite"`
	InWatchlist bool `json:"inWatchlist"`
	Watched     bool `json:"watched"`
}

// DefaultPreferences returns the preferences a fresh account starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Genres:        []int{},
		MinRating:     0,
		WatchedMovies: []int{},
	}
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
