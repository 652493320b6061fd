package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brimhollow/herotrack/internal/service"
)

type heroRequest struct {
	Name      *string `json:"name"`
	HeroClass string  `json:"hero_class"`
	Portrait  *string `json:"portrait"`

	Health        *int `json:"health"`
	Sanity        *int `json:"sanity"`
	Agility       *int `json:"agility"`
	Cunning       *int `json:"cunning"`
	Spirit        *int `json:"spirit"`
	Strength      *int `json:"strength"`
	Lore          *int `json:"lore"`
	Luck          *int `json:"luck"`
	Initiative    *int `json:"initiative"`
	Combat        *int `json:"combat"`
	MaxGrit       *int `json:"max_grit"`
	CorruptResist *int `json:"corrupt_resist"`

	RangeToHit *int `json:"range_to_hit"`
	MeleeToHit *int `json:"melee_to_hit"`
	Defense    *int `json:"defense"`
	Willpower  *int `json:"willpower"`

	Experience *int `json:"experience"`
	Gold       *int `json:"gold"`
	DarkStone  *int `json:"dark_stone"`

	SidebagCapacity *int `json:"sidebag_capacity"`
}

func (r heroRequest) params() service.HeroParams {
	return service.HeroParams{
		Name:            r.Name,
		Portrait:        r.Portrait,
		Health:          r.Health,
		Sanity:          r.Sanity,
		Agility:         r.Agility,
		Cunning:         r.Cunning,
		Spirit:          r.Spirit,
		Strength:        r.Strength,
		Lore:            r.Lore,
		Luck:            r.Luck,
		Initiative:      r.Initiative,
		Combat:          r.Combat,
		MaxGrit:         r.MaxGrit,
		CorruptResist:   r.CorruptResist,
		RangeToHit:      r.RangeToHit,
		MeleeToHit:      r.MeleeToHit,
		Defense:         r.Defense,
		Willpower:       r.Willpower,
		Experience:      r.Experience,
		Gold:            r.Gold,
		DarkStone:       r.DarkStone,
		SidebagCapacity: r.SidebagCapacity,
	}
}

func (s *Server) listHeroes(c *gin.Context) {
	heroes, err := s.svc.ListHeroes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]heroSummaryView, 0, len(heroes))
	for _, h := range heroes {
		views = append(views, heroSummaryView{
			ID:        h.ID,
			Name:      h.Name,
			HeroClass: h.HeroClass,
			Portrait:  h.Portrait,
		})
	}
	c.JSON(http.StatusOK, gin.H{"heroes": views})
}

func (s *Server) createHero(c *gin.Context) {
	var req heroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	hero, err := s.svc.CreateHero(c.Request.Context(), name, req.HeroClass, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newHeroView(hero))
}

func (s *Server) getHero(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	hero, err := s.svc.GetHero(c.Request.Context(), heroID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newHeroView(hero))
}

func (s *Server) updateHero(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	var req heroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	hero, err := s.svc.UpdateHero(c.Request.Context(), heroID, req.params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newHeroView(hero))
}

func (s *Server) deleteHero(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	if err := s.svc.DeleteHero(c.Request.Context(), heroID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) addSidebagToken(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	hero, err := s.svc.AddSidebagToken(c.Request.Context(), heroID, req.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newHeroView(hero))
}

func (s *Server) removeSidebagToken(c *gin.Context) {
	heroID, ok := pathID(c, "heroID")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	hero, err := s.svc.RemoveSidebagTokenAt(c.Request.Context(), heroID, index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newHeroView(hero))
}

// pathID parses an int64 path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return 0, false
	}
	return id, true
}
