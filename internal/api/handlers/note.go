package handlers

import (
	"net/http"

	"linkedlist-backend/internal/database/models"
	"linkedlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles HTTP requests for notes
type NoteHandler struct {
	noteService service.NoteServiceInterface
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService service.NoteServiceInterface) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// CreateNote handles POST /api/notes
// @Summary Create a note on a link
// @Tags notes
// @Accept json
// @Produce json
// @Param note body models.NoteInput true "Note data"
// @Success 201 {object} models.Note
// @Failure 400 {object} ErrorResponse "Invalid body or unknown link"
// @Failure 500 {object} ErrorResponse
// @Router /api/notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req models.NoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBodyMessage})
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Link not found", "Failed to create note")
		return
	}
	c.JSON(http.StatusCreated, note)
}

// UpdateNote handles PATCH /api/notes/:id
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param note body models.NotePatch true "Fields to change"
// @Success 200 {object} models.Note
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/notes/{id} [patch]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var req models.NotePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBodyMessage})
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Note not found", "Failed to update note")
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNote handles DELETE /api/notes/:id
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	if err := h.noteService.DeleteNote(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err, "Failed to delete note")
		return
	}
	respondSuccess(c)
}
