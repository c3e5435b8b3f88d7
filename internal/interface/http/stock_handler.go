package httpapi

import (
	"net/http"
)

// handleStocks 回傳個股日 K 序列；行情來源不可用時為合成資料。
func (s *Server) handleStocks(w http.ResponseWriter, r *http.Request) {
	company := r.PathValue("company")
	if company == "" {
		writeError(w, http.StatusBadRequest, errCodeBadRequest, "company required")
		return
	}
	days := parseIntDefault(r.URL.Query().Get("days"), 30)
	if days > 365 {
		days = 365
	}

	candles := s.marketData.Series(r.Context(), company, days)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"symbol":  company,
		"count":   len(candles),
		"items":   candles,
	})
}
