package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/seogi1004/dental-al/internal/config"
	"github.com/seogi1004/dental-al/internal/dateutil"
)

type ExportHandler struct {
	Cfg config.Config
}

func NewExportHandler(cfg config.Config) *ExportHandler {
	return &ExportHandler{Cfg: cfg}
}

// RosterXLSX streams a spreadsheet snapshot of the merged roster, with
// leave and off tokens rendered in display form.
func (h *ExportHandler) RosterXLSX(c *gin.Context) {
	adapter := newAdapter(c, h.Cfg)
	roster, err := adapter.FetchRoster(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"이름", "직급", "입사일", "발생연차", "사용연차", "비고", "연차내역", "오프내역"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
			return
		}
	}

	for r, staff := range roster {
		leaves := make([]string, 0, len(staff.Leaves))
		for _, leave := range staff.Leaves {
			leaves = append(leaves, dateutil.FormatDate(leave.Original, h.Cfg.SheetYear))
		}
		offs := make([]string, 0, len(staff.Offs))
		for _, off := range staff.Offs {
			offs = append(offs, dateutil.FormatDate(off.Date, h.Cfg.SheetYear))
		}

		values := []any{
			staff.Name,
			staff.Role,
			staff.JoinDate,
			staff.Total,
			staff.Used,
			staff.Memo,
			strings.Join(leaves, ", "),
			strings.Join(offs, ", "),
		}
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
				return
			}
		}
	}

	filename := fmt.Sprintf("roster-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("xlsx write error: %v", err)
	}
}

// LeavePDF renders a printable leave-request form for one staff member and
// date. The form uses the PDF core fonts, so labels are in English; the
// clinic stamps and signs the printout.
func (h *ExportHandler) LeavePDF(c *gin.Context) {
	name := c.Query("name")
	date := c.Query("date")
	reason := c.Query("reason")
	if name == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name or date"})
		return
	}

	parsed := dateutil.ParseToken(date, h.Cfg.SheetYear)
	if parsed.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("token %q (want MM/DD, MM/DD AM or MM/DD PM)", date)})
		return
	}

	leaveKind := "Full day"
	switch parsed.Type {
	case dateutil.AM:
		leaveKind = "Morning (AM)"
	case dateutil.PM:
		leaveKind = "Afternoon (PM)"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, "Leave Request Form", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	rows := [][2]string{
		{"Name", name},
		{"Date", parsed.Date},
		{"Type", leaveKind},
		{"Reason", reason},
		{"Requested", time.Now().Format("2006-01-02")},
	}

	pdf.SetFont("Arial", "", 12)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(40, 10, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 10, tr(row[1]), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(20)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(85, 10, "Requester signature: ______________", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, "Approver signature: ______________", "", 1, "L", false, 0, "")

	c.Header("Content-Disposition", `attachment; filename="leave-request.pdf"`)
	c.Header("Content-Type", "application/pdf")
	if err := pdf.Output(c.Writer); err != nil {
		log.Printf("pdf write error: %v", err)
	}
}
