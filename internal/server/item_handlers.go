package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brimhollow/herotrack/internal/model"
	"github.com/brimhollow/herotrack/internal/service"
)

type itemRequest struct {
	Name          *string        `json:"name"`
	Description   *string        `json:"description"`
	BodyParts     []string       `json:"body_parts"`
	HandsRequired *int           `json:"hands_required"`
	Weight        *int           `json:"weight"`
	Modifiers     map[string]int `json:"modifiers"`
}

func (r itemRequest) params() service.ItemParams {
	params := service.ItemParams{
		Name:          r.Name,
		Description:   r.Description,
		HandsRequired: r.HandsRequired,
		Weight:        r.Weight,
		Modifiers:     toModifiers(r.Modifiers),
	}
	if r.BodyParts != nil {
		parts := make([]model.BodyPart, len(r.BodyParts))
		for n, p := range r.BodyParts {
			parts[n] = model.BodyPart(p)
		}
		params.BodyPartsUsed = parts
	}
	return params
}

// toModifiers keeps the nil/non-nil distinction: nil means "no modifier
// submission", an empty map means "clear the block".
func toModifiers(raw map[string]int) model.Modifiers {
	if raw == nil {
		return nil
	}
	mods := make(model.Modifiers, len(raw))
	for attr, v := range raw {
		mods[model.Attribute(attr)] = v
	}
	return mods
}

func (s *Server) createItem(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	item, err := s.svc.CreateItem(c.Request.Context(), heroID, name, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newItemView(item))
}

func (s *Server) updateItem(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	item, err := s.svc.UpdateItem(c.Request.Context(), heroID, itemID, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newItemView(item))
}

func (s *Server) deleteItem(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.svc.DeleteItem(c.Request.Context(), heroID, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) equipItem(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := s.svc.EquipItem(c.Request.Context(), heroID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newItemView(item))
}

func (s *Server) unequipItem(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := s.svc.UnequipItem(c.Request.Context(), heroID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newItemView(item))
}
