package handlers

import (
	"net/http"

	"linkedlist-backend/internal/auth"
	"linkedlist-backend/internal/database/models"
	"linkedlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles HTTP requests for links and their sub-resources
type LinkHandler struct {
	linkService  service.LinkServiceInterface
	noteService  service.NoteServiceInterface
	labelService service.LabelServiceInterface
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(linkService service.LinkServiceInterface, noteService service.NoteServiceInterface, labelService service.LabelServiceInterface) *LinkHandler {
	return &LinkHandler{
		linkService:  linkService,
		noteService:  noteService,
		labelService: labelService,
	}
}

// ListLinks handles GET /api/links
// @Summary List links
// @Description Returns every link, newest first
// @Tags links
// @Produce json
// @Success 200 {array} models.Link
// @Failure 500 {object} ErrorResponse
// @Router /api/links [get]
func (h *LinkHandler) ListLinks(c *gin.Context) {
	links, err := h.linkService.GetLinks(c.Request.Context())
	if err != nil {
		respondError(c, err, "Link not found", "Failed to fetch links")
		return
	}
	c.JSON(http.StatusOK, links)
}

// GetLink handles GET /api/links/:id
// @Summary Get a link
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} models.Link
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/links/{id} [get]
func (h *LinkHandler) GetLink(c *gin.Context) {
	link, err := h.linkService.GetLinkByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Link not found", "Failed to fetch link")
		return
	}
	c.JSON(http.StatusOK, link)
}

// GetFullLink handles GET /api/links/:id/full
// @Summary Get a link with its notes and labels
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} models.LinkFull
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/links/{id}/full [get]
func (h *LinkHandler) GetFullLink(c *gin.Context) {
	link, err := h.linkService.GetFullLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Link not found", "Failed to fetch link")
		return
	}
	c.JSON(http.StatusOK, link)
}

// CreateLink handles POST /api/links
// @Summary Create a link
// @Description The link is owned by the signed-in user, or by the default user when anonymous
// @Tags links
// @Accept json
// @Produce json
// @Param link body models.LinkInput true "Link data"
// @Success 201 {object} models.Link
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/links [post]
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req models.LinkInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBodyMessage})
		return
	}

	userID, _ := auth.GetUserID(c)
	link, err := h.linkService.CreateLink(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Link not found", "Failed to create link")
		return
	}
	c.JSON(http.StatusCreated, link)
}

// UpdateLink handles PATCH /api/links/:id
// @Summary Update a link
// @Description Only the fields present in the body change. An explicit null description clears it.
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param link body models.LinkPatch true "Fields to change"
// @Success 200 {object} models.Link
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/links/{id} [patch]
func (h *LinkHandler) UpdateLink(c *gin.Context) {
	var req models.LinkPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBodyMessage})
		return
	}

	link, err := h.linkService.UpdateLink(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Link not found", "Failed to update link")
		return
	}
	c.JSON(http.StatusOK, link)
}

// DeleteLink handles DELETE /api/links/:id
// @Summary Delete a link
// @Description Removes the link together with its notes and label associations
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/links/{id} [delete]
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	if err := h.linkService.DeleteLink(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err, "Failed to delete link")
		return
	}
	respondSuccess(c)
}

// ListNotes handles GET /api/links/:id/notes
// @Summary List the notes of a link
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {array} models.Note
// @Failure 500 {object} ErrorResponse
// @Router /api/links/{id}/notes [get]
func (h *LinkHandler) ListNotes(c *gin.Context) {
	notes, err := h.noteService.GetNotesByLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Link not found", "Failed to fetch notes")
		return
	}
	c.JSON(http.StatusOK, notes)
}

// ListLabels handles GET /api/links/:id/labels
// @Summary List the labels of a link
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {array} models.Label
// @Failure 500 {object} ErrorResponse
// @Router /api/links/{id}/labels [get]
func (h *LinkHandler) ListLabels(c *gin.Context) {
	labels, err := h.labelService.GetLabelsByLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Link not found", "Failed to fetch labels")
		return
	}
	c.JSON(http.StatusOK, labels)
}

// AddLabel handles PUT /api/links/:id/labels/:labelId
// @Summary Attach a label to a link
// @Description Attaching a label twice is not an error
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Param labelId path string true "Label ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/links/{id}/labels/{labelId} [put]
func (h *LinkHandler) AddLabel(c *gin.Context) {
	if err := h.labelService.AddLabelToLink(c.Request.Context(), c.Param("id"), c.Param("labelId")); err != nil {
		respondMutationError(c, err, "Failed to add label to link")
		return
	}
	respondSuccess(c)
}

// RemoveLabel handles DELETE /api/links/:id/labels/:labelId
// @Summary Detach a label from a link
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Param labelId path string true "Label ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/links/{id}/labels/{labelId} [delete]
func (h *LinkHandler) RemoveLabel(c *gin.Context) {
	if err := h.labelService.RemoveLabelFromLink(c.Request.Context(), c.Param("id"), c.Param("labelId")); err != nil {
		respondMutationError(c, err, "Failed to remove label from link")
		return
	}
	respondSuccess(c)
}
