// Package render formats query results as a fixed-width table, CSV,
// JSON, or YAML. Every format emits the same column set in the same
// order; one record maps to exactly one row. Empty input renders a
// well-formed empty structure.
package render

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"stackmatrix/pkg/stack"
)

const columnGap = "  "

// Write renders records to w in the given format. includeScore
// controls whether table and CSV output carry the composite_score
// column; callers are expected to have populated the scores via the
// query layer.
func Write(w io.Writer, records []stack.ScoredProfile, f Format, includeScore bool) error {
	switch f {
	case FormatTable:
		return writeTable(w, records, includeScore)
	case FormatCSV:
		return writeCSV(w, records, includeScore)
	case FormatJSON:
		return writeJSON(w, records)
	case FormatYAML:
		return writeYAML(w, records)
	}
	return errors.Wrapf(stack.ErrInvalidArgument, "unknown output format: %d", int(f))
}

func headers(includeScore bool) []string {
	h := make([]string, 0, len(stack.Columns)+1)
	h = append(h, stack.Columns...)
	if includeScore {
		h = append(h, stack.ColCompositeScore)
	}
	return h
}

func rowValues(r stack.ScoredProfile, includeScore bool) []string {
	vals := []string{
		r.Key,
		r.Name,
		r.Family,
		strconv.Itoa(r.PrivacyLevel),
		strconv.Itoa(r.SoundnessFocus),
		strconv.Itoa(r.PerformanceCost),
		strconv.Itoa(r.DevComplexity),
		strconv.Itoa(r.EcosystemMaturity),
	}
	if includeScore {
		vals = append(vals, formatScore(r.CompositeScore))
	}
	return vals
}

func formatScore(s *float64) string {
	if s == nil {
		return ""
	}
	return strconv.FormatFloat(*s, 'f', -1, 64)
}

func writeTable(w io.Writer, records []stack.ScoredProfile, includeScore bool) error {
	cols := headers(includeScore)

	widths := make([]int, len(cols))
	for i, h := range cols {
		widths[i] = runewidth.StringWidth(h)
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		vals := rowValues(r, includeScore)
		for i, v := range vals {
			if vw := runewidth.StringWidth(v); vw > widths[i] {
				widths[i] = vw
			}
		}
		rows = append(rows, vals)
	}

	var b strings.Builder
	for i, h := range cols {
		if i > 0 {
			b.WriteString(columnGap)
		}
		b.WriteString(pad(strings.ToUpper(h), widths[i]))
	}
	b.WriteString("\n")
	for i := range cols {
		if i > 0 {
			b.WriteString(columnGap)
		}
		b.WriteString(strings.Repeat("-", widths[i]))
	}
	b.WriteString("\n")
	for _, vals := range rows {
		for i, v := range vals {
			if i > 0 {
				b.WriteString(columnGap)
			}
			b.WriteString(pad(v, widths[i]))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write table")
}

func pad(s string, width int) string {
	if d := width - runewidth.StringWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func writeCSV(w io.Writer, records []stack.ScoredProfile, includeScore bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers(includeScore)); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}
	for _, r := range records {
		if err := cw.Write(rowValues(r, includeScore)); err != nil {
			return errors.Wrapf(err, "failed to write csv row for %s", r.Key)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush csv")
}

func writeJSON(w io.Writer, records []stack.ScoredProfile) error {
	if records == nil {
		records = []stack.ScoredProfile{}
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return errors.Wrap(e.Encode(records), "failed to encode json")
}

func writeYAML(w io.Writer, records []stack.ScoredProfile) error {
	if records == nil {
		records = []stack.ScoredProfile{}
	}
	return errors.Wrap(yaml.NewEncoder(w).Encode(records), "failed to encode yaml")
}
