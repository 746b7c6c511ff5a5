// Package emit writes test trip identifiers.
//
// The default configuration writes exactly two lines:
//
//	Test Trip Request ID: <random version-4 identifier>
//	SQL Test Trip ID: ba85c75a-3087-4141-bccf-d636f77fffbc
package emit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/tessro/tripid/internal/id"
	"github.com/tessro/tripid/internal/style"
)

// Labels written in text output.
const (
	LabelTripRequest = "Test Trip Request ID"
	LabelSQLTrip     = "SQL Test Trip ID"
)

// SQLTestTripID is the trip ID seeded by the SQL test fixture.
const SQLTestTripID = "ba85c75a-3087-4141-bccf-d636f77fffbc"

// MaxCount is the largest number of trip request IDs one run may emit.
const MaxCount = 1000

// ErrInvalidCount is returned when Options.Count is out of range.
var ErrInvalidCount = errors.New("count out of range")

// Options configures an Emitter. The zero value selects the default output.
type Options struct {
	Format Format
	// Count is the number of trip request IDs to generate (default 1).
	Count int
	// Labeler styles text labels; nil writes them unchanged.
	Labeler *style.Labeler
}

// Emitter generates trip request IDs and writes them with the fixed SQL trip ID.
type Emitter struct {
	w    io.Writer
	gen  id.Generator
	opts Options
}

// Record is the structured form used by the json and yaml formats.
// TestTripRequestID holds a string for a single ID and a list otherwise.
type Record struct {
	TestTripRequestID any    `json:"test_trip_request_id" yaml:"test_trip_request_id"`
	SQLTestTripID     string `json:"sql_test_trip_id" yaml:"sql_test_trip_id"`
}

// New returns an Emitter writing to w. A nil gen uses id.RandomGenerator.
func New(w io.Writer, gen id.Generator, opts Options) *Emitter {
	if gen == nil {
		gen = id.RandomGenerator{}
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.Count == 0 {
		opts.Count = 1
	}
	return &Emitter{w: w, gen: gen, opts: opts}
}

// Emit writes a single "<label>: <value>" line to w.
func Emit(w io.Writer, label, value string) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", label, value)
	return err
}

// Run generates the configured number of trip request IDs and writes them,
// followed by SQLTestTripID.
func (e *Emitter) Run() error {
	if e.opts.Count < 1 || e.opts.Count > MaxCount {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidCount, e.opts.Count, MaxCount)
	}

	ids := make([]string, e.opts.Count)
	for i := range ids {
		ids[i] = e.gen.Generate()
		slog.Debug("generated trip request id", "id", ids[i])
	}

	switch e.opts.Format {
	case FormatText:
		return e.writeText(ids)
	case FormatJSON:
		enc := json.NewEncoder(e.w)
		enc.SetIndent("", "  ")
		return enc.Encode(newRecord(ids))
	case FormatYAML:
		enc := yaml.NewEncoder(e.w)
		enc.SetIndent(2)
		if err := enc.Encode(newRecord(ids)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, e.opts.Format)
	}
}

func (e *Emitter) writeText(ids []string) error {
	label := e.opts.Labeler.Label(LabelTripRequest)
	for _, v := range ids {
		if err := Emit(e.w, label, v); err != nil {
			return fmt.Errorf("write trip request id: %w", err)
		}
	}
	if err := Emit(e.w, e.opts.Labeler.Label(LabelSQLTrip), SQLTestTripID); err != nil {
		return fmt.Errorf("write sql test trip id: %w", err)
	}
	return nil
}

func newRecord(ids []string) Record {
	r := Record{SQLTestTripID: SQLTestTripID}
	if len(ids) == 1 {
		r.TestTripRequestID = ids[0]
	} else {
		r.TestTripRequestID = ids
	}
	return r
}
