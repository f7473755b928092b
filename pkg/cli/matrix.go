package cli

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"stackmatrix/pkg/render"
	"stackmatrix/pkg/stack"
)

func optional(val string) *string {
	if val == "" {
		return nil
	}
	return &val
}

func cmdMatrix(c *cli.Context) error {
	format, err := render.ParseFormat(c.String(formatFlag.Name))
	if err != nil {
		return err
	}

	q := &stack.SearchCriteria{
		Key:          optional(c.String(stackFlag.Name)),
		SortBy:       optional(c.String(sortByFlag.Name)),
		Descending:   c.Bool(descendingFlag.Name),
		IncludeScore: c.Bool(includeScoreFlag.Name),
	}
	slog.Debug("querying catalog", "criteria", q, "format", format)

	records, err := stack.Search(stack.Default(), q)
	if err != nil {
		return errors.Wrap(err, "failed to query catalog")
	}

	if err := render.Write(stdout, records, format, q.ScoreIncluded()); err != nil {
		return errors.Wrap(err, "failed to render output")
	}

	return nil
}
