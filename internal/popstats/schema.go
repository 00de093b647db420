package popstats

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Column maps one table cell to a named field.
type Column struct {
	Field  string
	Index  int    // zero-based td index within the row
	Remove string // first occurrence is deleted from the cell text
}

// Section locates a table by the text of the heading element right before it.
type Section struct {
	Key     string
	Heading string // substring matched against the heading text, case-sensitive
	Tag     string // heading element name, "h2" when empty
	Row     int    // zero-based tr index; row 0 holds the column titles
	Columns []Column
}

// Schema is the declarative layout of a statistics page. A change in the
// remote layout is absorbed by editing the schema, not the extraction code.
type Schema []Section

// Records holds extracted cell text by section key, then field name.
type Records map[string]map[string]string

// Get returns the text of a field, "" when the section or field is unknown.
func (r Records) Get(section, field string) string {
	return r[section][field]
}

const (
	SectionAllTime = "all_time"
	SectionDay     = "last_24h"
	SectionLastTx  = "last_tx"
)

// StatsSchema describes the three statistics tables of a pubkey page.
var StatsSchema = Schema{
	{
		Key:     SectionAllTime,
		Heading: "All-Time Statistics:",
		Row:     1,
		Columns: []Column{
			{Field: "total_txs", Index: 0},
			{Field: "total_keystones", Index: 1},
			{Field: "total_fees", Index: 2},
		},
	},
	{
		Key:     SectionDay,
		Heading: "24-Hour Statistics:",
		Row:     1,
		Columns: []Column{
			{Field: "pop_txs", Index: 0},
			{Field: "unique_keystones", Index: 1},
			{Field: "pop_fees", Index: 2},
			{Field: "avg_fee_rate", Index: 3},
		},
	},
	{
		Key:     SectionLastTx,
		Heading: "Last PoP Transaction:",
		Row:     1,
		Columns: []Column{
			{Field: "keystone_id", Index: 0},
			{Field: "fee", Index: 1, Remove: " BTC"},
			{Field: "fee_rate", Index: 2},
			{Field: "btc_block", Index: 3},
			{Field: "timestamp", Index: 4},
		},
	},
}

// Extract reads every column of every section from doc. A missing heading,
// table, row, or cell leaves the field as "" rather than failing.
func Extract(doc *goquery.Document, schema Schema) Records {
	records := make(Records, len(schema))
	for _, sec := range schema {
		tag := sec.Tag
		if tag == "" {
			tag = "h2"
		}

		table := doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
			return strings.Contains(s.Text(), sec.Heading)
		}).NextFiltered("table")

		row := table.Find("tr").Eq(sec.Row)

		fields := make(map[string]string, len(sec.Columns))
		for _, col := range sec.Columns {
			text := strings.TrimSpace(row.Find("td").Eq(col.Index).Text())
			if col.Remove != "" {
				text = strings.Replace(text, col.Remove, "", 1)
			}
			fields[col.Field] = text
		}
		records[sec.Key] = fields
	}
	return records
}
