package report

import (
	"encoding/json"
	"fmt"
	"io"

	"audiobook-exporter/core/reconcile"
)

// DiffDocument is the machine-readable form of a dry-run diff.
type DiffDocument struct {
	Summary reconcile.Summary    `json:"summary"`
	Files   []reconcile.FileDiff `json:"files"`
}

// WriteJSON writes diffs and their summary as indented JSON.
func WriteJSON(w io.Writer, diffs []reconcile.FileDiff) error {
	if diffs == nil {
		diffs = []reconcile.FileDiff{}
	}
	doc := DiffDocument{
		Summary: reconcile.Summarize(diffs),
		Files:   diffs,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
