package handler

import (
	"context"
	"strings"
	"sync"

	"main/model"
)

// In-memory repositories backing the handler tests; same contracts as the
// Mongo repositories.

type fakeUsersRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: make(map[string]*model.User)}
}

func (r *fakeUsersRepo) AddUser(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return model.ErrDuplicateUser
	}
	copied := *user
	r.users[user.Username] = &copied
	return nil
}

func (r *fakeUsersRepo) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, exists := r.users[username]
	if !exists {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

type fakeNotesRepo struct {
	mu    sync.Mutex
	notes map[string]*model.Note
}

func newFakeNotesRepo() *fakeNotesRepo {
	return &fakeNotesRepo{notes: make(map[string]*model.Note)}
}

func copyNote(note *model.Note) *model.Note {
	copied := *note
	copied.SharedWith = append([]string{}, note.SharedWith...)
	return &copied
}

func (r *fakeNotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[note.ID] = copyNote(note)
	return nil
}

func (r *fakeNotesRepo) GetNote(ctx context.Context, noteID string) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, exists := r.notes[noteID]
	if !exists {
		return nil, model.ErrNoteNotFound
	}
	return copyNote(note), nil
}

func (r *fakeNotesRepo) GetVisibleNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	visible := []*model.Note{}
	for _, note := range r.notes {
		if note.Owner == userID || note.IsSharedWith(userID) {
			visible = append(visible, copyNote(note))
		}
	}
	return visible, nil
}

func (r *fakeNotesRepo) UpdateNote(ctx context.Context, noteID, ownerID, title, content string) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, exists := r.notes[noteID]
	if !exists || note.Owner != ownerID {
		return nil, model.ErrNoteNotFound
	}
	note.Title = title
	note.Content = content
	return copyNote(note), nil
}

func (r *fakeNotesRepo) DeleteNote(ctx context.Context, noteID, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, exists := r.notes[noteID]
	if !exists || note.Owner != ownerID {
		return model.ErrNoteNotFound
	}
	delete(r.notes, noteID)
	return nil
}

func (r *fakeNotesRepo) ShareNote(ctx context.Context, noteID, ownerID, recipientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, exists := r.notes[noteID]
	if !exists || note.Owner != ownerID {
		return model.ErrNoteNotFound
	}
	if !note.IsSharedWith(recipientID) {
		note.SharedWith = append(note.SharedWith, recipientID)
	}
	return nil
}

func (r *fakeNotesRepo) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	query = strings.ToLower(query)
	results := []*model.Note{}
	for _, note := range r.notes {
		if note.Owner != userID && !note.IsSharedWith(userID) {
			continue
		}
		if strings.Contains(strings.ToLower(note.Title), query) ||
			strings.Contains(strings.ToLower(note.Content), query) {
			results = append(results, copyNote(note))
		}
	}
	return results, nil
}
