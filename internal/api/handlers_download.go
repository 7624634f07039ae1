package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/dgallion1/saesum/internal/export"
)

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sid, ok := sessionFromRequest(r)
	if !ok {
		jsonError(w, "No summary available. Upload a document first.", http.StatusNotFound)
		return
	}
	report, ok := s.sessions.Get(sid)
	if !ok {
		jsonError(w, "No summary available. Upload a document first.", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, report); err != nil {
		s.log.Error("export failed", "session_id", sid, "format", format, "error", err)
		jsonError(w, "failed to render summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", format.Filename()))
	w.Write(buf.Bytes())
}
