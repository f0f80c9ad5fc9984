package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	footing "Bearing/internal/calc/footing"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type FootingImportResult struct {
	Count   int              `json:"count"`
	Results []footing.Result `json:"results"`
}

// Footing reads an uploaded xlsx with columns P, M, B, D, e (header row
// first) and computes the bearing pressure for every parseable row. Rows
// that fail to parse or validate are skipped, not fatal.
func (h *Handler) Footing(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []footing.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseFootingRow(rows[i])
		if err != nil {
			continue
		}
		res, err := footing.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FootingImportResult{Count: len(results), Results: results})
}

// parseFootingRow turns five raw text cells into a calculation input.
// expected: p_kn, m_knm, b_m, d_m, e_m
func parseFootingRow(row []string) (footing.Input, error) {
	if len(row) < 5 {
		return footing.Input{}, fmt.Errorf("bad row")
	}
	p, err := toFloat(row[0])
	if err != nil {
		return footing.Input{}, err
	}
	m, err := toFloat(row[1])
	if err != nil {
		return footing.Input{}, err
	}
	b, err := toFloat(row[2])
	if err != nil {
		return footing.Input{}, err
	}
	d, err := toFloat(row[3])
	if err != nil {
		return footing.Input{}, err
	}
	e, err := toFloat(row[4])
	if err != nil {
		return footing.Input{}, err
	}
	return footing.Input{PKN: p, MKN: m, BM: b, DM: d, EM: e}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
