package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brimhollow/herotrack/internal/service"
)

type adjustmentRequest struct {
	Title     *string        `json:"title"`
	Active    *bool          `json:"active"`
	Modifiers map[string]int `json:"modifiers"`
}

func (r adjustmentRequest) params() service.AdjustmentParams {
	return service.AdjustmentParams{
		Title:     r.Title,
		Active:    r.Active,
		Modifiers: toModifiers(r.Modifiers),
	}
}

func (s *Server) createAdjustment(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	var req adjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	title := ""
	if req.Title != nil {
		title = *req.Title
	}
	adj, err := s.svc.CreateAdjustment(c.Request.Context(), heroID, title, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAdjustmentView(adj))
}

func (s *Server) updateAdjustment(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	adjustmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req adjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	adj, err := s.svc.UpdateAdjustment(c.Request.Context(), heroID, adjustmentID, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAdjustmentView(adj))
}

func (s *Server) toggleAdjustment(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	adjustmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	adj, err := s.svc.ToggleAdjustment(c.Request.Context(), heroID, adjustmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAdjustmentView(adj))
}

func (s *Server) deleteAdjustment(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	adjustmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.svc.DeleteAdjustment(c.Request.Context(), heroID, adjustmentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
