// Package server exposes the hero tracker over a JSON HTTP API.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/brimhollow/herotrack/internal/data"
	"github.com/brimhollow/herotrack/internal/service"
)

// Server wires the hero service and catalogue into a gin router.
type Server struct {
	svc     *service.HeroService
	catalog *data.Catalog
}

// New creates a server over the given service and catalogue.
func New(svc *service.HeroService, catalog *data.Catalog) *Server {
	return &Server{svc: svc, catalog: catalog}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	s.RegisterRoutes(router)
	return router
}

// RegisterRoutes mounts the API on the given engine.
func (s *Server) RegisterRoutes(router *gin.Engine) {
	heroes := router.Group("/heroes")
	{
		heroes.GET("", s.listHeroes)
		heroes.POST("", s.createHero)
		heroes.GET("/:heroID", s.getHero)
		heroes.PATCH("/:heroID", s.updateHero)
		heroes.DELETE("/:heroID", s.deleteHero)

		heroes.POST("/:heroID/sidebag_tokens", s.addSidebagToken)
		heroes.DELETE("/:heroID/sidebag_tokens/:index", s.removeSidebagToken)

		heroes.POST("/:heroID/adjustments", s.createAdjustment)
		heroes.PATCH("/:heroID/adjustments/:id", s.updateAdjustment)
		heroes.POST("/:heroID/adjustments/:id/toggle", s.toggleAdjustment)
		heroes.DELETE("/:heroID/adjustments/:id", s.deleteAdjustment)

		heroes.POST("/:heroID/items", s.createItem)
		heroes.PATCH("/:heroID/items/:id", s.updateItem)
		heroes.DELETE("/:heroID/items/:id", s.deleteItem)
		heroes.POST("/:heroID/items/:id/equip", s.equipItem)
		heroes.POST("/:heroID/items/:id/unequip", s.unequipItem)

		heroes.POST("/:heroID/injuries", s.createInjury)
		heroes.PATCH("/:heroID/injuries/:id", s.updateInjury)
		heroes.DELETE("/:heroID/injuries/:id", s.deleteInjury)

		heroes.POST("/:heroID/madnesses", s.createMadness)
		heroes.PATCH("/:heroID/madnesses/:id", s.updateMadness)
		heroes.DELETE("/:heroID/madnesses/:id", s.deleteMadness)

		heroes.POST("/:heroID/mutations", s.createMutation)
		heroes.PATCH("/:heroID/mutations/:id", s.updateMutation)
		heroes.DELETE("/:heroID/mutations/:id", s.deleteMutation)
	}

	catalog := router.Group("/catalog")
	{
		catalog.GET("/injuries", s.listInjuryCatalog)
		catalog.GET("/madnesses", s.listMadnessCatalog)
		catalog.GET("/mutations", s.listMutationCatalog)
		catalog.GET("/hero_classes", s.listHeroClasses)
	}
}
