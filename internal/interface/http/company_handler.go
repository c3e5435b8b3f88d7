package httpapi

import (
	"math/rand"
	"net/http"

	"stock-insight/internal/domain/news"
)

type companyItem struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

// handleCompanies 列出語料中出現過的公司，附展示用的隨機價格與漲跌。
func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	corpus := s.corpus.Load(r.Context())
	labels := distinctCompanies(corpus)

	items := make([]companyItem, 0, len(labels))
	for _, label := range labels {
		items = append(items, companyItem{
			Symbol: label,
			Name:   label,
			Price:  round2(100 + rand.Float64()*900),
			Change: round2(-10 + rand.Float64()*20),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(items),
		"items":   items,
	})
}

// distinctCompanies 依首次出現順序去重；空標籤略過。
func distinctCompanies(corpus []news.RawRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range corpus {
		if rec.Company == "" || seen[rec.Company] {
			continue
		}
		seen[rec.Company] = true
		out = append(out, rec.Company)
	}
	return out
}
