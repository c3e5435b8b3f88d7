package httpapi

import "net/http"

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}

// handleHealth 回報服務與相依元件狀態。
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbStatus := "disabled"
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"status":           "ok",
		"db":               dbStatus,
		"registry_entries": s.registry.Current().Len(),
		"sentiment":        s.sentimentUC != nil,
	})
}
