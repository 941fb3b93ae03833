package usecase

import (
	"context"
	"fmt"
	"strings"

	"main/model"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	maxTitleLength   = 200
	maxContentLength = 50000
)

// NotesRepository is the note store the service orchestrates against.
// Implemented by repository.NotesRepo; tests provide in-memory fakes.
type NotesRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetNote(ctx context.Context, noteID string) (*model.Note, error)
	GetVisibleNotes(ctx context.Context, userID string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, noteID, ownerID, title, content string) (*model.Note, error)
	DeleteNote(ctx context.Context, noteID, ownerID string) error
	ShareNote(ctx context.Context, noteID, ownerID, recipientID string) error
	SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error)
}

type NotesService struct {
	NotesRepo NotesRepository
	Guard     services.Guard
}

func NewNotesService(repo NotesRepository) *NotesService {
	return &NotesService{NotesRepo: repo}
}

func validateNote(title, content string) error {
	// Title and content may be empty; only runaway sizes are rejected.
	if len(title) > maxTitleLength {
		return fmt.Errorf("%w: note title exceeds maximum length", model.ErrBadRequest)
	}
	if len(content) > maxContentLength {
		return fmt.Errorf("%w: note content exceeds maximum length", model.ErrBadRequest)
	}
	return nil
}

// List returns the notes owned by or shared with the caller.
func (svc *NotesService) List(ctx context.Context, callerID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetVisibleNotes(ctx, callerID)
}

// Create persists a new note owned by the caller with an empty share list.
func (svc *NotesService) Create(ctx context.Context, callerID, title, content string) (*model.Note, error) {
	if err := validateNote(title, content); err != nil {
		return nil, err
	}

	note := &model.Note{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    content,
		Owner:      callerID,
		SharedWith: []string{},
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// Get fetches a note and applies the read guard. A note that exists but is
// not visible to the caller comes back as model.ErrNoteForbidden; the wire
// layer decides whether to collapse that into a 404.
func (svc *NotesService) Get(ctx context.Context, callerID, noteID string) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if !svc.Guard.CanRead(callerID, note) {
		log.Warn().
			Str("caller", callerID).
			Str("note_id", noteID).
			Msg("read denied on existing note")
		utils.TrackError("auth", "note_read_denied")
		return nil, model.ErrNoteForbidden
	}

	return note, nil
}

// Update replaces title and content. The store query is owner-scoped, so a
// non-owner's attempt fails as model.ErrNoteNotFound.
func (svc *NotesService) Update(ctx context.Context, callerID, noteID, title, content string) (*model.Note, error) {
	if err := validateNote(title, content); err != nil {
		return nil, err
	}

	updated, err := svc.NotesRepo.UpdateNote(ctx, noteID, callerID, title, content)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("update")
	return updated, nil
}

// Delete removes an owned note; owner-scoped like Update.
func (svc *NotesService) Delete(ctx context.Context, callerID, noteID string) error {
	if err := svc.NotesRepo.DeleteNote(ctx, noteID, callerID); err != nil {
		return err
	}

	utils.TrackNoteOperation("delete")
	return nil
}

// Share grants read access on an owned note to the recipient. The share
// list has set semantics, so repeating a share is a no-op; sharing with the
// owner is also a no-op since ownership already implies access.
func (svc *NotesService) Share(ctx context.Context, callerID, noteID, recipientID string) error {
	if noteID == "" || recipientID == "" {
		return fmt.Errorf("%w: missing noteId or recipientUserId", model.ErrBadRequest)
	}

	if recipientID == callerID {
		// Keep the invariant that shared_with never contains the owner.
		// Still verify the note exists and is owned by the caller.
		note, err := svc.NotesRepo.GetNote(ctx, noteID)
		if err != nil {
			return err
		}
		if !svc.Guard.CanWrite(callerID, note) {
			return model.ErrNoteNotFound
		}
		return nil
	}

	if err := svc.NotesRepo.ShareNote(ctx, noteID, callerID, recipientID); err != nil {
		return err
	}

	utils.TrackNoteOperation("share")
	return nil
}

// Search runs a full-text match over title and content, restricted to the
// caller's visible set.
func (svc *NotesService) Search(ctx context.Context, callerID, query string) ([]*model.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", model.ErrBadRequest)
	}

	notes, err := svc.NotesRepo.SearchNotes(ctx, callerID, query)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("search")
	return notes, nil
}
