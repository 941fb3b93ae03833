package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"` // Hashed password field
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Identity is the caller identity embedded in a session token.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}
