package httpapi

import (
	"log"
	"net/http"
	"time"
)

// handleRegistryReload 重新載入證券參考清單並原子替換目前的對照表。
func (s *Server) handleRegistryReload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log.Printf("registry reload start")
	entries := s.registry.Reload()
	log.Printf("registry reload done entries=%d duration=%s", entries, time.Since(start))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"entries": entries,
	})
}
