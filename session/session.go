// Package session runs the boundary state machine over an ordered sequence
// of paginated filing documents. It coordinates listing, parsing, marker
// lookup, range extraction, style aggregation, assembly and storage.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/splice"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Runner orchestrates extraction sessions. Detector, Converter and Logger
// are optional.
type Runner struct {
	Source    splice.DocumentSource
	Parser    splice.Parser
	Locator   splice.MarkerLocator
	Extractor splice.RangeExtractor
	Styles    splice.StyleCollector
	Detector  splice.FormatDetector
	Assembler splice.Assembler
	Store     splice.OutputStore
	Converter splice.Converter
	Logger    *slog.Logger
}

// Request describes one extraction run.
type Request struct {
	// Input is a single file or a directory of paginated files.
	Input string

	// Output is the path of the assembled document.
	Output string

	// MarkdownOutput, if set, receives a Markdown rendition of the output.
	MarkdownOutput string

	Markers splice.Markers
	Title   string
}

// Result holds the outcome of a successful run.
type Result struct {
	SessionID string
	State     splice.ExtractionState
	Processed int
	Failed    int
	Skipped   int
	Fragments int
	Styles    int
	Bytes     int
	Digest    uint64
	Warnings  []string
	Documents []DocumentReport
}

// DocumentReport describes what one document contributed.
type DocumentReport struct {
	Name       string
	Seq        int
	Format     splice.Format
	StartFound bool
	EndFound   bool
	Kind       splice.RangeKind
	State      splice.ExtractionState
	Nodes      int
	Err        error
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Document  string
	Format    splice.Format
	Kind      splice.RangeKind
	State     splice.ExtractionState
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// session is the mutable state of one run. It is created fresh by Run and
// never shared between runs.
type session struct {
	id        string
	state     splice.ExtractionState
	fragments []*splice.Fragment
	styles    *splice.StyleSet
	warnings  []string
	reports   []DocumentReport
	failed    int
}

func newSession() *session {
	return &session{
		id:     uuid.NewString(),
		state:  splice.StateNotStarted,
		styles: splice.NewStyleSet(),
	}
}

func (s *session) warn(format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	s.warnings = append(s.warnings, msg)
	return msg
}

// Run extracts the section bounded by req.Markers from the documents under
// req.Input and writes the assembled document to req.Output.
//
// Returns ENOTFOUND if the input does not exist, ENOCONTENT if no document
// contains the start marker, and EINTERNAL if the output cannot be written.
// Per-document failures are logged and recorded in the result instead.
func (r *Runner) Run(ctx context.Context, req Request, progress ProgressFunc) (*Result, error) {
	if err := req.Markers.Validate(); err != nil {
		return nil, err
	}
	if req.Output == "" {
		return nil, splice.Errorf(splice.EINVALID, "output path required")
	}
	if req.MarkdownOutput != "" && r.Converter == nil {
		return nil, splice.Errorf(splice.EINVALID, "markdown output requires a converter")
	}
	title := req.Title
	if title == "" {
		title = splice.DefaultTitle
	}

	paths, err := r.Source.List(ctx, req.Input)
	if err != nil {
		return nil, err
	}

	s := newSession()
	logger := r.logger().With("session", s.id)
	logger.Info("session started", "input", req.Input, "documents", len(paths))

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(paths), State: s.state})
	}

	processed := 0
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.state == splice.StateCompleted {
			logger.Debug("section complete, skipping remaining documents", "remaining", len(paths)-i)
			break
		}

		report := r.processDocument(ctx, s, logger, req.Markers, i, path)
		s.reports = append(s.reports, report)
		processed++

		if progress != nil {
			ev := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: processed,
				Total:     len(paths),
				Document:  report.Name,
				Format:    report.Format,
				Kind:      report.Kind,
				State:     report.State,
				Error:     report.Err,
			}
			if report.Err != nil {
				ev.Type = ProgressFailed
			}
			progress(ev)
		}
	}

	switch s.state {
	case splice.StateNotStarted:
		logger.Warn("start marker not found", "marker", req.Markers.Start)
		return nil, splice.Errorf(splice.ENOCONTENT, "start marker %q not found in %d document(s)", req.Markers.Start, processed)
	case splice.StateCapturing:
		msg := s.warn("incomplete extraction: end marker %q not found", req.Markers.End)
		logger.Warn(msg)
	}

	out, err := r.Assembler.Assemble(title, s.fragments, s.styles.Rules())
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	if err := r.Store.Save(ctx, req.Output, out); err != nil {
		return nil, splice.Errorf(splice.EINTERNAL, "write output %s: %v", req.Output, err)
	}

	if req.MarkdownOutput != "" {
		md, err := r.Converter.Convert(string(out))
		if err != nil {
			return nil, fmt.Errorf("convert to markdown: %w", err)
		}
		if err := r.Store.Save(ctx, req.MarkdownOutput, []byte(md)); err != nil {
			return nil, splice.Errorf(splice.EINTERNAL, "write markdown %s: %v", req.MarkdownOutput, err)
		}
	}

	result := &Result{
		SessionID: s.id,
		State:     s.state,
		Processed: processed,
		Failed:    s.failed,
		Skipped:   len(paths) - processed,
		Fragments: countNonEmpty(s.fragments),
		Styles:    s.styles.Len(),
		Bytes:     len(out),
		Digest:    xxhash.Sum64(out),
		Warnings:  s.warnings,
		Documents: s.reports,
	}

	logger.Info("session finished",
		"state", s.state.String(),
		"processed", result.Processed,
		"skipped", result.Skipped,
		"fragments", result.Fragments,
		"styles", result.Styles,
		"bytes", result.Bytes,
	)

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: processed,
			Total:     len(paths),
			State:     s.state,
		})
	}

	return result, nil
}

// processDocument runs one document through the state machine. Failures
// are confined to the document: they are logged, recorded in the report,
// and the document contributes an empty fragment.
func (r *Runner) processDocument(ctx context.Context, s *session, logger *slog.Logger, markers splice.Markers, seq int, path string) DocumentReport {
	name := filepath.Base(path)
	report := DocumentReport{Name: name, Seq: seq, Kind: splice.RangeNone, State: s.state}

	doc, err := r.parse(ctx, name, seq, path)
	if err != nil {
		s.failed++
		s.fragments = append(s.fragments, &splice.Fragment{Document: name, Seq: seq})
		logger.Warn(s.warn("skipping %s: %v", name, err))
		report.Err = err
		return report
	}

	s.styles.AddAll(r.Styles.Collect(doc))
	if r.Detector != nil {
		report.Format = r.Detector.Detect(doc)
	}

	var start, end *html.Node
	if s.state == splice.StateNotStarted {
		start = r.Locator.Locate(doc, markers.Start)
	}
	if s.state != splice.StateCompleted {
		end = r.Locator.Locate(doc, markers.End)
	}
	if start != nil && end != nil && !doc.Follows(start, end) {
		// The first end match sits before the section, e.g. in an index.
		logger.Debug("end marker precedes start marker, searching after start", "file", name)
		end = r.Locator.LocateAfter(doc, markers.End, start)
	}
	report.StartFound = start != nil
	report.EndFound = end != nil

	kind, next := splice.Decide(s.state, start != nil, end != nil)
	report.Kind = kind

	if kind.Emits() {
		frag, err := r.Extractor.Extract(doc, splice.Range{Kind: kind, Start: start, End: end})
		if err != nil {
			s.failed++
			logger.Warn(s.warn("extracting from %s: %v", name, err))
			report.Err = err
			frag = &splice.Fragment{Document: name, Seq: seq, Kind: kind}
		}
		s.fragments = append(s.fragments, frag)
		report.Nodes = len(frag.Nodes)
	}

	logger.Info("document processed",
		"file", name,
		"format", string(report.Format),
		"start", report.StartFound,
		"end", report.EndFound,
		"range", kind.String(),
		"state", next.String(),
		"nodes", report.Nodes,
	)

	s.state = next
	report.State = next
	return report
}

func (r *Runner) parse(ctx context.Context, name string, seq int, path string) (*splice.Document, error) {
	rc, err := r.Source.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return r.Parser.Parse(name, seq, rc)
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func countNonEmpty(frags []*splice.Fragment) int {
	n := 0
	for _, f := range frags {
		if !f.Empty() {
			n++
		}
	}
	return n
}

// Summary returns a one-line human-readable description of the result.
func (res *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d document(s) processed, %d skipped, %d fragment(s), %d style rule(s), %d bytes",
		res.State, res.Processed, res.Skipped, res.Fragments, res.Styles, res.Bytes)
	if res.Failed > 0 {
		fmt.Fprintf(&b, ", %d failed", res.Failed)
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintf(&b, ", %d warning(s)", len(res.Warnings))
	}
	return b.String()
}
