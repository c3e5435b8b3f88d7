package httpapi

import (
	"encoding/json"
	"net/http"

	"stock-insight/internal/application/sentiment"
	"stock-insight/internal/domain/news"
)

// handleAnalyzeSentiment 對指定公司的新聞做情緒分析。
// 參數不完整時回 400，但 body 仍為中性形狀，前端不需特判。
func (s *Server) handleAnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Company string      `json:"company"`
		News    []news.Item `json:"news"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeNeutralError(w, http.StatusBadRequest, "未收到請求數據", "無數據可供分析")
		return
	}
	if body.Company == "" || len(body.News) == 0 {
		writeNeutralError(w, http.StatusBadRequest, "缺少必要參數", "參數不完整")
		return
	}

	result := s.sentimentUC.Analyze(r.Context(), body.Company, body.News)
	writeJSON(w, http.StatusOK, result)
}

func writeNeutralError(w http.ResponseWriter, status int, errMsg, summary string) {
	writeJSON(w, status, map[string]interface{}{
		"error":       errMsg,
		"sentiment":   sentiment.SentimentNeutral,
		"summary":     summary,
		"suggestions": []string{"請提供公司名稱和新聞數據"},
	})
}
