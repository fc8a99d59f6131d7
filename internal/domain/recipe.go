package domain

import (
	"time"
)

// Recipe is the aggregate root for a recipe and its reviews. Reviews
// is initialized to an empty slice on creation so that a recipe that
// has never been reviewed is distinguishable from one loaded from a
// legacy document with no reviews field.
type Recipe struct {
	ID             string    `bson:"_id" json:"id"`
	OwnerID        string    `bson:"owner_id" json:"owner_id"`
	Title          string    `bson:"title" json:"title"`
	Description    string    `bson:"description" json:"description"`
	Ingredients    []string  `bson:"ingredients" json:"ingredients"`
	Instructions   []string  `bson:"instructions" json:"instructions"`
	Tags           []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	ImageURL       string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	ImageUploadURL string    `bson:"image_upload_url,omitempty" json:"image_upload_url,omitempty"`
	AverageRating  float64   `bson:"average_rating,omitempty" json:"average_rating,omitempty"`
	Reviews        []Review  `bson:"reviews" json:"reviews"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// Review represents a single user's review of a recipe. At most one
// review per (recipe, author) pair exists; a resubmission revises the
// stored comment in place.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	RecipeID  string    `bson:"recipe_id" json:"recipe_id"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ReviewByAuthor returns a pointer to the author's existing review,
// or nil when the author has not reviewed this recipe yet.
func (r *Recipe) ReviewByAuthor(authorID string) *Review {
	for i := range r.Reviews {
		if r.Reviews[i].AuthorID == authorID {
			return &r.Reviews[i]
		}
	}
	return nil
}
