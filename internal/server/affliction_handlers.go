package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brimhollow/herotrack/internal/service"
)

type afflictionRequest struct {
	ChartKey    string         `json:"chart_key"`
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Roll        *int           `json:"roll"`
	Modifiers   map[string]int `json:"modifiers"`
	Permanent   *bool          `json:"permanent"`
}

func (r afflictionRequest) params() service.AfflictionParams {
	return service.AfflictionParams{
		Name:        r.Name,
		Description: r.Description,
		Roll:        r.Roll,
		Modifiers:   toModifiers(r.Modifiers),
		Permanent:   r.Permanent,
	}
}

func (s *Server) createInjury(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	var req afflictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	inj, err := s.svc.AddInjury(c.Request.Context(), heroID, req.ChartKey, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newInjuryView(inj))
}

func (s *Server) updateInjury(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	injuryID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req afflictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	inj, err := s.svc.UpdateInjury(c.Request.Context(), heroID, injuryID, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newInjuryView(inj))
}

func (s *Server) deleteInjury(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	injuryID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.svc.DeleteInjury(c.Request.Context(), heroID, injuryID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createMadness(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	var req afflictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	m, err := s.svc.AddMadness(c.Request.Context(), heroID, req.ChartKey, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMadnessView(m))
}

func (s *Server) updateMadness(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	madnessID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req afflictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	m, err := s.svc.UpdateMadness(c.Request.Context(), heroID, madnessID, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMadnessView(m))
}

func (s *Server) deleteMadness(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	madnessID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.svc.DeleteMadness(c.Request.Context(), heroID, madnessID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createMutation(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	var req afflictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	m, err := s.svc.AddMutation(c.Request.Context(), heroID, req.ChartKey, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMutationView(m))
}

func (s *Server) updateMutation(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	mutationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req afflictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	m, err := s.svc.UpdateMutation(c.Request.Context(), heroID, mutationID, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMutationView(m))
}

func (s *Server) deleteMutation(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	mutationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.svc.DeleteMutation(c.Request.Context(), heroID, mutationID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
