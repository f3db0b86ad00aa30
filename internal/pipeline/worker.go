package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/gedgest/internal/gedcom"
	"github.com/dgallion1/gedgest/internal/project"
	"github.com/dgallion1/gedgest/internal/store"
)

// Worker processes a single ingestion job: parse the upload, project the
// selected record kinds, store the result.
type Worker struct {
	store *store.Store
	log   *slog.Logger
	opts  project.Options
	stats *ParseStats
}

func NewWorker(st *store.Store, log *slog.Logger, opts project.Options, stats *ParseStats) *Worker {
	return &Worker{
		store: st,
		log:   log,
		opts:  opts,
		stats: stats,
	}
}

// Process runs the full ingest pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	data := job.FileData()
	job.SetContentHash(ContentHashHex(data))

	// Dedup: an identical upload maps to the document already stored.
	if existingID, err := w.findDuplicate(job.ContentHash); err != nil {
		log.Warn("dedup check failed, proceeding", "error", err)
	} else if existingID != "" {
		log.Info("duplicate upload, skipping", "existing_doc_id", existingID)
		job.SetDocID(existingID)
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	// Phase 1: Parse.
	job.SetStatus(StatusParsing, "parsing")
	start := time.Now()
	doc, err := gedcom.Parse(bytes.NewReader(data))
	w.stats.Record(time.Since(start).Milliseconds())
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.AddWarnings(doc.Warnings)
	log.Info("parsed document",
		"records", len(doc.Roots),
		"xrefs", len(doc.ByXref),
		"warnings", len(doc.Warnings),
	)

	if ctx.Err() != nil {
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 2: Project.
	job.SetStatus(StatusProjecting, "projecting")
	projected := project.Project(doc, w.opts)

	indis := len(doc.RootsByTag(gedcom.TagIndi))
	fams := len(doc.RootsByTag(gedcom.TagFam))
	job.SetCounts(len(doc.Roots), indis, fams)

	// Phase 3: Store.
	job.SetStatus(StatusStoring, "storing")
	meta := store.Meta{
		ID:          job.DocID,
		Filename:    job.Filename,
		ContentHash: job.ContentHash,
		Individuals: indis,
		Families:    fams,
		Warnings:    doc.Warnings,
		CreatedAt:   job.CreatedAt,
	}
	if err := w.store.Put(meta, projected); err != nil {
		log.Error("store failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	log.Info("ingest complete", "individuals", indis, "families", fams)
	job.SetStatus(StatusCompleted, "done")
}

// findDuplicate returns the id of a stored document with the same
// content hash, if any.
func (w *Worker) findDuplicate(hash string) (string, error) {
	metas, err := w.store.List()
	if err != nil {
		return "", err
	}
	for _, m := range metas {
		if m.ContentHash == hash {
			return m.ID, nil
		}
	}
	return "", nil
}
