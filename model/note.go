package model

import (
	"time"
)

type Note struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content" json:"content"`
	Owner       string    `bson:"owner" json:"owner"`
	SharedWith  []string  `bson:"shared_with" json:"shared_with,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	SearchScore float64   `bson:"score,omitempty" json:"search_score,omitempty"`
}

// IsSharedWith reports whether userID appears in the note's share list.
// The owner is never listed in shared_with; ownership is checked separately.
func (n *Note) IsSharedWith(userID string) bool {
	for _, id := range n.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}
