// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pick runs one pick-level invocation: it resolves the requested
// action, parses the SLC file only when an action needs it, and writes the
// result to the output writer.
package pick

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sokoban-slc/internal/board"
	"github.com/pdiddy/sokoban-slc/internal/slc"
	"github.com/pdiddy/sokoban-slc/pkg/types"
)

// ErrHelp is returned by Run when neither an id nor listing was requested.
// The caller shows usage and exits successfully.
var ErrHelp = errors.New("no action requested")

// Action is what a single invocation does.
type Action int

const (
	ActionHelp Action = iota
	ActionList
	ActionSelect
)

// Options holds the inputs of one invocation.
type Options struct {
	Path   string
	ID     string
	List   bool
	Format types.OutputFormat

	// Check decodes the selected level's board and fails when it contains
	// characters outside the legend.
	Check bool

	// Render prints the selected level in canonical board notation instead
	// of its raw rows.
	Render bool
}

// Action returns the requested action. Selecting by id takes precedence
// over listing.
func (o Options) Action() Action {
	switch {
	case o.ID != "":
		return ActionSelect
	case o.List:
		return ActionList
	}
	return ActionHelp
}

// Run executes opts and writes results to w, one value per line in text
// format. Diagnostics go to log, which may be nil.
func Run(ctx context.Context, w io.Writer, opts Options, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	action := opts.Action()
	if action == ActionHelp {
		return ErrHelp
	}

	format, err := types.ParseOutputFormat(string(opts.Format))
	if err != nil {
		return err
	}

	log.Debug("parsing level collection", "path", opts.Path)
	doc, err := slc.ParseFile(opts.Path)
	if err != nil {
		return err
	}

	if action == ActionList {
		return list(ctx, w, doc, format)
	}
	return selectLevel(w, doc, opts, format, log)
}

func list(ctx context.Context, w io.Writer, doc *slc.Document, format types.OutputFormat) error {
	var records []types.LevelRecord
	for id, err := range slc.ListIDs(doc) {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if format == types.FormatText {
			if _, err := fmt.Fprintln(w, id); err != nil {
				return err
			}
			continue
		}
		records = append(records, types.LevelRecord{ID: id})
	}

	if format == types.FormatText {
		return nil
	}
	if records == nil {
		records = []types.LevelRecord{}
	}
	return encode(w, format, records)
}

func selectLevel(w io.Writer, doc *slc.Document, opts Options, format types.OutputFormat, log *slog.Logger) error {
	sel := slc.SelectLevel(doc, opts.ID)
	if err := sel.Err(); err != nil {
		return err
	}
	lines := slices.Collect(sel.Lines())
	log.Debug("selected level", "id", opts.ID, "lines", len(lines))

	var b board.Board
	if opts.Check || opts.Render || format != types.FormatText {
		b = board.Parse(lines)
	}

	switch {
	case format != types.FormatText:
		stats := b.Stats()
		rec := types.LevelRecord{ID: opts.ID, Lines: lines, Board: &stats}
		if opts.Render {
			rec.Rendered = b.String()
		}
		if err := encode(w, format, rec); err != nil {
			return err
		}
	case opts.Render:
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	default:
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	if !opts.Check {
		return nil
	}
	for _, sq := range b.Invalid {
		log.Warn("invalid board character", "id", opts.ID, "x", sq.X, "y", sq.Y, "char", string(sq.Char))
	}
	if n := len(b.Invalid); n > 0 {
		return fmt.Errorf("level %q has %d invalid board character(s)", opts.ID, n)
	}
	return nil
}

func encode(w io.Writer, format types.OutputFormat, v any) error {
	switch format {
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q", format)
}
