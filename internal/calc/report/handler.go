package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	auth "Bearing/internal/auth"
	footing "Bearing/internal/calc/footing"
	resultlog "Bearing/internal/resultlog"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

type Handler struct {
	Logs *resultlog.Registry
}

// Generate renders the caller's logged footing calculations as a PDF table,
// one row per saved result, numbers at display precision.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Footing Bearing Pressure Report"
	}

	entries := h.Logs.Get(userID).Entries()
	if len(entries) == 0 {
		http.Error(w, "No results to report", http.StatusNotFound)
		return
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	headers := []string{"Timestamp", "P (kN)", "M (kNm)", "B (m)", "D (m)", "e (m)", "qmax (kN/m2)", "Case"}
	widths := []float64{42, 28, 28, 24, 24, 24, 36, 24}

	pdf.SetFont("Helvetica", "B", 10)
	for i, head := range headers {
		pdf.CellFormat(widths[i], 7, head, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, e := range entries {
		cells := []string{
			e.Timestamp.Format("2006-01-02 15:04:05"),
			footing.Format3SF(e.Input.PKN),
			footing.Format3SF(e.Input.MKN),
			footing.Format3SF(e.Input.BM),
			footing.Format3SF(e.Input.DM),
			footing.Format3SF(e.Input.EM),
			footing.Format3SF(e.QmaxKNM2),
			string(e.Case),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"footing_pressure_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
