package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seogi1004/dental-al/internal/config"
	"github.com/seogi1004/dental-al/internal/middleware"
	"github.com/seogi1004/dental-al/internal/sheets"
	"github.com/seogi1004/dental-al/internal/store"
)

// newAdapter builds the store adapter for this request. Authenticated
// callers reach the Sheets API with their own Google token; everyone else
// gets the read-only public CSV transport.
func newAdapter(c *gin.Context, cfg config.Config) *store.Adapter {
	opt := store.Options{
		SummarySheet:  cfg.SummarySheet,
		CalendarSheet: cfg.CalendarSheet,
		OffSheet:      cfg.OffSheet,
		OffSheetGID:   cfg.OffSheetGID,
		Year:          cfg.SheetYear,
	}

	token := c.GetString(middleware.ContextGoogleToken)
	if token != "" {
		isAdmin := c.GetBool(middleware.ContextIsAdmin)
		return store.New(sheets.NewClient(cfg.SpreadsheetID, token, isAdmin), opt)
	}
	return store.New(sheets.NewCSVStore(cfg.SpreadsheetID, cfg.CSVGIDs()), opt)
}

// respondError maps the store error taxonomy onto HTTP statuses. A Google
// 401/403 mid-session means the access token expired; that case gets the
// SESSION_EXPIRED code so the UI can prompt a re-login.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sheets.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, sheets.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, sheets.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": "no leave slot available, delete an old entry first"})
	case errors.Is(err, sheets.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied, admin only"})
	default:
		var te *sheets.TransportError
		if errors.As(err, &te) && (te.Status == http.StatusUnauthorized || te.Status == http.StatusForbidden) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "google credential expired", "code": "SESSION_EXPIRED"})
			return
		}
		log.Printf("sheet request error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sheet request failed"})
	}
}
