package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/hemi-popstats/internal/format"
	"github.com/dmagro/hemi-popstats/internal/locale"
	"github.com/dmagro/hemi-popstats/internal/popstats"
)

// StatsFormatter renders the three statistics sections of a lookup result.
type StatsFormatter struct {
	Result   *popstats.Result
	Messages locale.Messages
}

func NewStatsFormatter(res *popstats.Result, msgs locale.Messages) *StatsFormatter {
	return &StatsFormatter{Result: res, Messages: msgs}
}

// Format writes one labelled table per section, fee amounts suffixed with
// their unit, followed by the request duration.
func (f *StatsFormatter) Format(w io.Writer) error {
	m := f.Messages
	s := f.Result.Stats.Formatted()
	fee := func(v string) string { return v + " " + m.FeeUnit }

	if f.Result.Resolved {
		fmt.Fprintf(w, "\n%s: %s (%s %s)\n", m.PubkeyLabel, f.Result.Pubkey, m.ResolvedLabel, f.Result.Input)
	}

	writeSection(w, m.AllTime, []string{
		s.AllTime.TotalTxs,
		s.AllTime.TotalKeystones,
		fee(s.AllTime.TotalFees),
	})
	writeSection(w, m.Day, []string{
		s.Day.PopTxs,
		s.Day.UniqueKeystones,
		fee(s.Day.PopFees),
		s.Day.AvgFeeRate,
	})
	writeSection(w, m.LastTx, []string{
		s.LastTx.KeystoneID,
		fee(s.LastTx.Fee),
		s.LastTx.FeeRate,
		s.LastTx.BTCBlock,
		s.LastTx.Timestamp,
	})

	fmt.Fprintf(w, "\n%s\n", format.Dim(fmt.Sprintf(m.FetchedIn, format.ColorLatency(f.Result.Latency))))
	return nil
}

func writeSection(w io.Writer, labels locale.SectionLabels, values []string) {
	fmt.Fprintln(w)

	headerFmt := color.New(color.Bold, color.Underline).SprintfFunc()
	labelFmt := color.New(color.FgCyan).SprintfFunc()

	tbl := table.New(labels.Title, "")
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)
	tbl.WithFirstColumnFormatter(labelFmt)

	for i, label := range labels.Fields {
		var v string
		if i < len(values) {
			v = values[i]
		}
		tbl.AddRow("* "+label+":", v)
	}
	tbl.Print()
}
