package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/saesum/internal/parser"
	"github.com/dgallion1/saesum/internal/sae"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		if errors.Is(err, http.ErrNotMultipart) {
			jsonError(w, "No file part in the request", http.StatusBadRequest)
			return
		}
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		// A part sent with an empty filename is parsed as a plain value.
		if _, ok := r.MultipartForm.Value["file"]; ok {
			jsonError(w, "No file selected", http.StatusBadRequest)
			return
		}
		jsonError(w, "No file part in the request", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Filename == "" || header.Filename == "." {
		jsonError(w, "No file selected", http.StatusBadRequest)
		return
	}
	filename := sanitizeFilename(header.Filename)
	ext := strings.ToLower(filepath.Ext(filename))
	if !s.cfg.IsAllowed(ext) || !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("Invalid file format. Only %s files are allowed", strings.Join(s.cfg.AllowedExtensions, ", ")), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	log := s.log.With("filename", filename, "bytes", len(data))

	results, err := sae.Extract(bytes.NewReader(data), filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		jsonError(w, "Error uploading or parsing file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	report := sae.Report{Results: results}

	sid := s.sessionFor(w, r)
	s.sessions.Put(sid, report)
	log.Info("parsed document", "session_id", sid, "results", len(results), "active_sessions", s.sessions.Len())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
