package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seogi1004/dental-al/internal/config"
	"github.com/seogi1004/dental-al/internal/models"
)

type RosterHandler struct {
	Cfg config.Config
}

func NewRosterHandler(cfg config.Config) *RosterHandler {
	return &RosterHandler{Cfg: cfg}
}

// Get returns the merged Staff view. The three sheet ranges are fetched
// concurrently; if any of them fails the whole read fails rather than
// serving a partially-merged roster.
func (h *RosterHandler) Get(c *gin.Context) {
	adapter := newAdapter(c, h.Cfg)
	roster, err := adapter.FetchRoster(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

// Save overwrites the summary roster rows (name, role, join date, total,
// memo). The used-days column keeps its sheet formulas and is never
// written. The UI coalesces rapid edits into one call before hitting this.
func (h *RosterHandler) Save(c *gin.Context) {
	var roster []models.Staff
	if err := c.ShouldBindJSON(&roster); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	for _, staff := range roster {
		if staff.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "staff name must not be empty"})
			return
		}
	}

	adapter := newAdapter(c, h.Cfg)
	if err := adapter.SaveSummary(c.Request.Context(), roster); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
