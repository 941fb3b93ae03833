package handler

import (
	"errors"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// mapNoteError translates service errors to wire responses. A note that
// exists but is not visible to the caller answers 404 like a missing one,
// so note ids cannot be probed for existence; the denial itself is already
// logged by the service.
func mapNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNoteNotFound), errors.Is(err, model.ErrNoteForbidden):
		utils.NotFound(c, "Note not found")
	case errors.Is(err, model.ErrBadRequest):
		utils.BadRequest(c, "invalid request")
	default:
		log.Error().Err(err).Msg("note operation failed")
		utils.InternalError(c, "Internal Server Error")
	}
}

func GetUserNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	notes, err := notesService.List(c.Request.Context(), userID)
	if err != nil {
		mapNoteError(c, err)
		return
	}

	utils.Success(c, gin.H{"notes": dto.ToNoteSummaries(notes)})
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.Create(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		mapNoteError(c, err)
		return
	}

	utils.Created(c, gin.H{"note": dto.ToNoteResponse(note, true)})
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	note, err := notesService.Get(c.Request.Context(), userID, noteID)
	if err != nil {
		mapNoteError(c, err)
		return
	}

	utils.Success(c, gin.H{"note": dto.ToNoteResponse(note, note.Owner == userID)})
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.Update(c.Request.Context(), userID, noteID, req.Title, req.Content)
	if err != nil {
		mapNoteError(c, err)
		return
	}

	utils.Success(c, gin.H{"note": dto.ToNoteResponse(note, true)})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	if err := notesService.Delete(c.Request.Context(), userID, noteID); err != nil {
		mapNoteError(c, err)
		return
	}

	utils.Success(c, gin.H{"result": true})
}

func ShareNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Bad Request: Missing noteId or recipientUserId")
		return
	}

	if err := notesService.Share(c.Request.Context(), userID, noteID, req.RecipientUserID); err != nil {
		mapNoteError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Note shared successfully"})
}

func SearchNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")
	query := c.Query("q")

	results, err := notesService.Search(c.Request.Context(), userID, query)
	if err != nil {
		mapNoteError(c, err)
		return
	}

	utils.Success(c, gin.H{"results": dto.ToNoteSummaries(results)})
}
