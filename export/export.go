// Package export writes generated trajectories in formats a plotting tool
// can consume directly: CSV (one row per sample) or JSON (one array per
// series).
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/brownian/motion"
)

// Format selects the output encoding.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

var (
	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrMalformed indicates a trajectory whose series disagree in length or
	// a PathSet without a displacement matrix.
	ErrMalformed = errors.New("export: malformed trajectory")
)

// ParseFormat maps a format name (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case CSV:
		return CSV, nil
	case JSON:
		return JSON, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string { return string(f) }

// walkJSON is the JSON layout of a Trajectory2D.
type walkJSON struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// pathsJSON is the JSON layout of a PathSet; Paths[j] is path j.
type pathsJSON struct {
	Time  []float64   `json:"time"`
	Paths [][]float64 `json:"paths"`
}

// WriteWalk encodes t as CSV ("step,x,y") or JSON ({"x":[],"y":[]}).
func WriteWalk(w io.Writer, t motion.Trajectory2D, f Format) error {
	if len(t.X) != len(t.Y) {
		return fmt.Errorf("WriteWalk: len(X)=%d len(Y)=%d: %w", len(t.X), len(t.Y), ErrMalformed)
	}
	switch f {
	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"step", "x", "y"}); err != nil {
			return fmt.Errorf("WriteWalk: %w", err)
		}
		for i := range t.X {
			if err := cw.Write([]string{strconv.Itoa(i), formatFloat(t.X[i]), formatFloat(t.Y[i])}); err != nil {
				return fmt.Errorf("WriteWalk: %w", err)
			}
		}
		return flush(cw, "WriteWalk")
	case JSON:
		return encodeJSON(w, walkJSON{X: t.X, Y: t.Y}, "WriteWalk")
	default:
		return fmt.Errorf("WriteWalk: %q: %w", f, ErrUnknownFormat)
	}
}

// WritePaths encodes ps as CSV ("time,path_0,...,path_{P-1}") or JSON
// ({"time":[],"paths":[[]...]}).
func WritePaths(w io.Writer, ps motion.PathSet, f Format) error {
	if ps.Displacement == nil || ps.Displacement.Rows() != len(ps.Time) {
		return fmt.Errorf("WritePaths: %w", ErrMalformed)
	}
	switch f {
	case CSV:
		return writePathsCSV(w, ps)
	case JSON:
		out := pathsJSON{Time: ps.Time, Paths: make([][]float64, ps.PathCount())}
		for j := range out.Paths {
			col, err := ps.Path(j)
			if err != nil {
				return fmt.Errorf("WritePaths: %w", err)
			}
			out.Paths[j] = col
		}
		return encodeJSON(w, out, "WritePaths")
	default:
		return fmt.Errorf("WritePaths: %q: %w", f, ErrUnknownFormat)
	}
}

// writePathsCSV emits one record per time sample.
func writePathsCSV(w io.Writer, ps motion.PathSet) error {
	cw := csv.NewWriter(w)
	p := ps.PathCount()

	header := make([]string, p+1)
	header[0] = "time"
	for j := 0; j < p; j++ {
		header[j+1] = "path_" + strconv.Itoa(j)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("WritePaths: %w", err)
	}

	record := make([]string, p+1)
	for i, ti := range ps.Time {
		row, err := ps.Displacement.Row(i)
		if err != nil {
			return fmt.Errorf("WritePaths: %w", err)
		}
		record[0] = formatFloat(ti)
		for j, v := range row {
			record[j+1] = formatFloat(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("WritePaths: %w", err)
		}
	}

	return flush(cw, "WritePaths")
}

// formatFloat renders v with the shortest exact representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func flush(cw *csv.Writer, op string) error {
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func encodeJSON(w io.Writer, v any, op string) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
