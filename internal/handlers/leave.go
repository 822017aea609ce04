package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seogi1004/dental-al/internal/config"
)

type LeaveHandler struct {
	Cfg config.Config
}

type addLeaveRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

type updateLeaveRequest struct {
	Name    string `json:"name" binding:"required"`
	OldDate string `json:"oldDate" binding:"required"`
	NewDate string `json:"newDate" binding:"required"`
}

type deleteLeaveRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

func NewLeaveHandler(cfg config.Config) *LeaveHandler {
	return &LeaveHandler{Cfg: cfg}
}

func (h *LeaveHandler) Add(c *gin.Context) {
	var req addLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name or date"})
		return
	}

	adapter := newAdapter(c, h.Cfg)
	if err := adapter.AddLeave(c.Request.Context(), req.Name, req.Date); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *LeaveHandler) Update(c *gin.Context) {
	var req updateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name, oldDate or newDate"})
		return
	}

	adapter := newAdapter(c, h.Cfg)
	if err := adapter.UpdateLeave(c.Request.Context(), req.Name, req.OldDate, req.NewDate); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *LeaveHandler) Delete(c *gin.Context) {
	var req deleteLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name or date"})
		return
	}

	adapter := newAdapter(c, h.Cfg)
	if err := adapter.DeleteLeave(c.Request.Context(), req.Name, req.Date); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
