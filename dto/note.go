package dto

import (
	"main/model"
	"time"
)

// NoteRequest carries create/update bodies. Title and content may be empty.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ShareRequest struct {
	RecipientUserID string `json:"recipientUserId" binding:"required"`
}

type NoteResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Owner      string    `json:"owner"`
	SharedWith []string  `json:"shared_with,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NoteSummary is the list/search projection. The share list is withheld
// from summaries.
type NoteSummary struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Owner   string  `json:"owner"`
	Score   float64 `json:"search_score,omitempty"`
}

// ToNoteResponse converts a note. The share list is included only when the
// caller owns the note.
func ToNoteResponse(note *model.Note, includeShares bool) NoteResponse {
	response := NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Owner:     note.Owner,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if includeShares {
		response.SharedWith = note.SharedWith
	}
	return response
}

func ToNoteSummaries(notes []*model.Note) []NoteSummary {
	summaries := make([]NoteSummary, len(notes))
	for i, note := range notes {
		summaries[i] = NoteSummary{
			ID:      note.ID,
			Title:   note.Title,
			Content: note.Content,
			Owner:   note.Owner,
			Score:   note.SearchScore,
		}
	}
	return summaries
}
