package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// ExportBackup handles GET /backup.
// The document is served as an attachment so browsers save it to disk.
func (s *Server) ExportBackup(w http.ResponseWriter, r *http.Request) {
	b, err := s.Backup.Export(r.Context())
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	name := fmt.Sprintf("trip-planner-backup-%s.json", b.ExportedAt.UTC().Format(time.DateOnly))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	writeJSON(w, http.StatusOK, b)
}

// ImportBackup handles POST /backup.
// Accepts both the current document and the legacy browser dump.
func (s *Server) ImportBackup(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(r)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	if len(raw) == 0 {
		s.writeError(w, r, bodyError(io.EOF), "")
		return
	}

	summary, err := s.Backup.Import(r.Context(), raw)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
