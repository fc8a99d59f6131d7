package domain

// Username holds a user's credentials and contact details as an
// embedded document.
type Username struct {
	Name     string `bson:"name" json:"name"`
	Surname  string `bson:"surname,omitempty" json:"surname,omitempty"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`
}

// User represents a registered user. Recipes is a derived view
// populated from the recipe collection on read; it is never stored
// on the user document itself.
type User struct {
	ID       string   `bson:"_id" json:"id"`
	Username Username `bson:"username" json:"username"`
	Recipes  []Recipe `bson:"-" json:"recipes"`
}
