package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seogi1004/dental-al/internal/config"
)

type OffHandler struct {
	Cfg config.Config
}

type addOffRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
	Memo string `json:"memo"`
}

type updateOffRequest struct {
	Name    string `json:"name" binding:"required"`
	OldDate string `json:"oldDate" binding:"required"`
	NewDate string `json:"newDate" binding:"required"`
	Memo    string `json:"memo"`
}

type deleteOffRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

func NewOffHandler(cfg config.Config) *OffHandler {
	return &OffHandler{Cfg: cfg}
}

// List returns the raw off-log rows (name, date, memo).
func (h *OffHandler) List(c *gin.Context) {
	adapter := newAdapter(c, h.Cfg)
	rows, err := adapter.ListOffRows(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = [][]string{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *OffHandler) Add(c *gin.Context) {
	var req addOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name or date"})
		return
	}

	adapter := newAdapter(c, h.Cfg)
	if err := adapter.AddOff(c.Request.Context(), req.Name, req.Date, req.Memo); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *OffHandler) Update(c *gin.Context) {
	var req updateOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name, oldDate or newDate"})
		return
	}

	adapter := newAdapter(c, h.Cfg)
	if err := adapter.UpdateOff(c.Request.Context(), req.Name, req.OldDate, req.NewDate, req.Memo); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *OffHandler) Delete(c *gin.Context) {
	var req deleteOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name or date"})
		return
	}

	adapter := newAdapter(c, h.Cfg)
	if err := adapter.DeleteOff(c.Request.Context(), req.Name, req.Date); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
