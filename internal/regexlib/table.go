package regexlib

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"
)

// WriteTable renders the transition table of d, one row per state. The
// initial state is prefixed with "->" and accepting states with "*";
// a missing transition prints as "-".
func WriteTable(w io.Writer, d *DFA) error {
	symbols := d.Symbols()
	header := make([]string, 0, len(symbols)+1)
	header = append(header, "State")
	for _, sym := range symbols {
		header = append(header, string(sym))
	}

	// symbols are case-sensitive, so headers are printed verbatim
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header(header)
	for _, s := range d.States {
		row := make([]string, 0, len(header))
		row = append(row, stateLabel(d, s))
		for _, sym := range symbols {
			to, ok := d.Next(s, sym)
			if !ok {
				to = "-"
			}
			row = append(row, to)
		}
		if err := table.Append(row); err != nil {
			return errors.Wrapf(err, "append row %s", s)
		}
	}
	return errors.Wrap(table.Render(), "render table")
}

func stateLabel(d *DFA, s string) string {
	label := s
	if d.IsAccept(s) {
		label = "*" + label
	}
	if s == d.Initial {
		label = "->" + label
	}
	return label
}
