package handlers

import (
	"net/http"

	"linkedlist-backend/internal/auth"
	"linkedlist-backend/internal/database/models"
	"linkedlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LabelHandler handles HTTP requests for labels
type LabelHandler struct {
	labelService service.LabelServiceInterface
}

// NewLabelHandler creates a new label handler
func NewLabelHandler(labelService service.LabelServiceInterface) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// ListLabels handles GET /api/labels
// @Summary List the current user's labels
// @Tags labels
// @Produce json
// @Success 200 {array} models.Label
// @Failure 500 {object} ErrorResponse
// @Router /api/labels [get]
func (h *LabelHandler) ListLabels(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	labels, err := h.labelService.GetLabels(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Label not found", "Failed to fetch labels")
		return
	}
	c.JSON(http.StatusOK, labels)
}

// CreateLabel handles POST /api/labels
// @Summary Create a label
// @Tags labels
// @Accept json
// @Produce json
// @Param label body models.LabelInput true "Label name"
// @Success 201 {object} models.Label
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/labels [post]
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var req models.LabelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBodyMessage})
		return
	}

	userID, _ := auth.GetUserID(c)
	label, err := h.labelService.CreateLabel(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Label not found", "Failed to create label")
		return
	}
	c.JSON(http.StatusCreated, label)
}

// UpdateLabel handles PATCH /api/labels/:id
// @Summary Rename a label
// @Tags labels
// @Accept json
// @Produce json
// @Param id path string true "Label ID"
// @Param label body models.LabelInput true "New name"
// @Success 200 {object} models.Label
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/labels/{id} [patch]
func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	var req models.LabelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBodyMessage})
		return
	}

	label, err := h.labelService.UpdateLabel(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Label not found", "Failed to update label")
		return
	}
	c.JSON(http.StatusOK, label)
}

// DeleteLabel handles DELETE /api/labels/:id
// @Summary Delete a label
// @Description Detaches the label from every link before removing it
// @Tags labels
// @Produce json
// @Param id path string true "Label ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/labels/{id} [delete]
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	if err := h.labelService.DeleteLabel(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err, "Failed to delete label")
		return
	}
	respondSuccess(c)
}

// ListLinks handles GET /api/labels/:id/links
// @Summary List the links carrying a label
// @Tags labels
// @Produce json
// @Param id path string true "Label ID"
// @Success 200 {array} models.Link
// @Failure 500 {object} ErrorResponse
// @Router /api/labels/{id}/links [get]
func (h *LabelHandler) ListLinks(c *gin.Context) {
	links, err := h.labelService.GetLinksByLabel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Label not found", "Failed to fetch links")
		return
	}
	c.JSON(http.StatusOK, links)
}
