package render

import (
	"strings"

	"github.com/pkg/errors"

	"stackmatrix/pkg/stack"
)

// Format is the validated output format. The zero value is the
// default table format, so Format values are safe to pass around
// uninitialized.
type Format int

const (
	FormatTable Format = iota
	FormatCSV
	FormatJSON
	FormatYAML
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{"table", "csv", "json", "yaml"}
}

// ParseFormat validates a format name once at the boundary. An empty
// name selects the table format; anything unrecognized fails with an
// error wrapping stack.ErrInvalidArgument.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatTable, errors.Wrapf(stack.ErrInvalidArgument, "unknown output format %q", name)
}

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "table"
	}
}
