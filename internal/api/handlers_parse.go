package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dgallion1/gedgest/internal/gedcom"
	"github.com/dgallion1/gedgest/internal/project"
)

// handleParse parses an uploaded GEDCOM file synchronously and returns
// the projected document without storing it.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	opts := project.Options{
		Kinds:          s.cfg.DefaultKinds,
		InlinePointers: s.cfg.InlinePointers,
	}
	if v := r.FormValue("kinds"); v != "" {
		opts.Kinds = splitKinds(v)
	}
	if v := r.FormValue("inline_pointers"); v != "" {
		opts.InlinePointers = v == "true"
	}

	start := time.Now()
	doc, err := gedcom.Parse(bytes.NewReader(data))
	s.orchestrator.Stats().Record(time.Since(start).Milliseconds())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"error":      err.Error(),
			"error_kind": errorKind(err),
			"filename":   filename,
		})
		return
	}

	projected := project.Project(doc, opts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"filename":    filename,
		"records":     len(doc.Roots),
		"individuals": len(doc.RootsByTag(gedcom.TagIndi)),
		"families":    len(doc.RootsByTag(gedcom.TagFam)),
		"warnings":    doc.Warnings,
		"document":    projected,
	})
}

// readUpload extracts the GEDCOM file from a multipart form, enforcing
// the size limit and extension check. On failure it writes the error
// response and returns ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, filename string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer file.Close()

	filename = sanitizeFilename(header.Filename)
	if !isGedcomFilename(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s (want .ged or .gedcom)", filename), http.StatusBadRequest)
		return nil, "", false
	}

	data, err = io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return nil, "", false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return nil, "", false
	}
	return data, filename, true
}

// errorKind classifies a parse failure for API clients.
func errorKind(err error) string {
	switch {
	case errors.Is(err, gedcom.ErrMalformedLine):
		return "malformed_line"
	case errors.Is(err, gedcom.ErrLevelSkip):
		return "level_skip"
	case errors.Is(err, gedcom.ErrDuplicateXref):
		return "duplicate_xref"
	default:
		return "parse_error"
	}
}

func splitKinds(v string) []string {
	var kinds []string
	for _, k := range strings.Split(v, ",") {
		k = strings.ToUpper(strings.TrimSpace(k))
		if k != "" {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
