package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brimhollow/herotrack/internal/data"
)

type chartEntryView struct {
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Roll        int            `json:"roll"`
	Modifiers   map[string]int `json:"modifiers"`
	Permanent   *bool          `json:"permanent,omitempty"`
}

func chartEntries(keys []string, lookup func(string) *data.AfflictionTemplate, withPermanent bool) []chartEntryView {
	out := make([]chartEntryView, 0, len(keys))
	for _, key := range keys {
		tpl := lookup(key)
		if tpl == nil {
			continue
		}
		entry := chartEntryView{
			Key:         key,
			Name:        tpl.Name,
			Description: tpl.Description,
			Roll:        tpl.Roll,
			Modifiers:   modifiersJSON(tpl.Modifiers),
		}
		if withPermanent {
			permanent := tpl.Permanent
			entry.Permanent = &permanent
		}
		out = append(out, entry)
	}
	return out
}

func (s *Server) listInjuryCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"injuries": chartEntries(s.catalog.InjuryKeys(), s.catalog.Injury, true),
	})
}

func (s *Server) listMadnessCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"madnesses": chartEntries(s.catalog.MadnessKeys(), s.catalog.Madness, true),
	})
}

func (s *Server) listMutationCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mutations": chartEntries(s.catalog.MutationKeys(), s.catalog.Mutation, false),
	})
}

func (s *Server) listHeroClasses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hero_classes": s.catalog.HeroClassNames()})
}
