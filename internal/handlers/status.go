package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seogi1004/dental-al/internal/config"
	"github.com/seogi1004/dental-al/internal/store"
)

type StatusHandler struct {
	Cfg config.Config
}

func NewStatusHandler(cfg config.Config) *StatusHandler {
	return &StatusHandler{Cfg: cfg}
}

// Get serves the board overview: who is out today, this month's leaves
// with duplicate flags, and advisory warnings for unparseable or
// Sunday-dated entries. Warnings never block writes.
func (h *StatusHandler) Get(c *gin.Context) {
	adapter := newAdapter(c, h.Cfg)
	roster, err := adapter.FetchRoster(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	today := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"date":          today.Format("2006-01-02"),
		"staffCount":    len(roster),
		"todayLeaves":   store.TodayLeaves(roster, today),
		"monthLeaves":   store.CurrentMonthLeaves(roster, today),
		"invalidLeaves": store.InvalidLeaves(roster),
		"sundayLeaves":  store.SundayLeaves(roster),
	})
}
