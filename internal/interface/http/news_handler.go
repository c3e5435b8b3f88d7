package httpapi

import (
	"net/http"
)

// handleNews 回傳指定公司的新聞清單。
// 路徑參數可為代號、名稱或兩者相連字串；ServeMux 已處理 URL 解碼。
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	company := r.PathValue("company")
	if company == "" {
		writeError(w, http.StatusBadRequest, errCodeBadRequest, "company required")
		return
	}

	corpus := s.corpus.Load(r.Context())
	res := s.feed.NewsFor(company, corpus)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"company":     res.CanonicalName,
		"synthesized": res.Synthesized,
		"count":       len(res.Items),
		"items":       res.Items,
	})
}
