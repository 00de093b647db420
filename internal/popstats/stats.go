package popstats

import (
	"context"
	"time"

	"github.com/dmagro/hemi-popstats/internal/format"
)

// AllTime is the all-time statistics row of a pubkey page.
type AllTime struct {
	TotalTxs       string `json:"total_txs"`
	TotalKeystones string `json:"total_keystones"`
	TotalFees      string `json:"total_fees"`
}

// Day is the 24-hour statistics row of a pubkey page.
type Day struct {
	PopTxs          string `json:"pop_txs"`
	UniqueKeystones string `json:"unique_keystones"`
	PopFees         string `json:"pop_fees"`
	AvgFeeRate      string `json:"avg_fee_rate"`
}

// LastTx describes the most recent PoP transaction of a pubkey.
type LastTx struct {
	KeystoneID string `json:"keystone_id"`
	Fee        string `json:"fee"`
	FeeRate    string `json:"fee_rate"`
	BTCBlock   string `json:"btc_block"`
	Timestamp  string `json:"timestamp"`
}

// Stats holds the raw, trimmed cell text of the three statistics tables.
type Stats struct {
	AllTime AllTime `json:"all_time"`
	Day     Day     `json:"last_24h"`
	LastTx  LastTx  `json:"last_tx"`
}

// StatsFromRecords maps records extracted with StatsSchema onto Stats.
func StatsFromRecords(r Records) Stats {
	return Stats{
		AllTime: AllTime{
			TotalTxs:       r.Get(SectionAllTime, "total_txs"),
			TotalKeystones: r.Get(SectionAllTime, "total_keystones"),
			TotalFees:      r.Get(SectionAllTime, "total_fees"),
		},
		Day: Day{
			PopTxs:          r.Get(SectionDay, "pop_txs"),
			UniqueKeystones: r.Get(SectionDay, "unique_keystones"),
			PopFees:         r.Get(SectionDay, "pop_fees"),
			AvgFeeRate:      r.Get(SectionDay, "avg_fee_rate"),
		},
		LastTx: LastTx{
			KeystoneID: r.Get(SectionLastTx, "keystone_id"),
			Fee:        r.Get(SectionLastTx, "fee"),
			FeeRate:    r.Get(SectionLastTx, "fee_rate"),
			BTCBlock:   r.Get(SectionLastTx, "btc_block"),
			Timestamp:  r.Get(SectionLastTx, "timestamp"),
		},
	}
}

// Formatted returns a copy for display: counts are grouped by thousands and
// fee amounts rounded, 5 digits for the last transaction fee and 2 for the
// others. Fee rates, identifiers and timestamps are kept verbatim.
func (s Stats) Formatted() Stats {
	return Stats{
		AllTime: AllTime{
			TotalTxs:       format.FormatNumber(s.AllTime.TotalTxs, format.Plain),
			TotalKeystones: format.FormatNumber(s.AllTime.TotalKeystones, format.Plain),
			TotalFees:      format.FormatNumber(s.AllTime.TotalFees, format.Fee),
		},
		Day: Day{
			PopTxs:          format.FormatNumber(s.Day.PopTxs, format.Plain),
			UniqueKeystones: format.FormatNumber(s.Day.UniqueKeystones, format.Plain),
			PopFees:         format.FormatNumber(s.Day.PopFees, format.Fee),
			AvgFeeRate:      s.Day.AvgFeeRate,
		},
		LastTx: LastTx{
			KeystoneID: s.LastTx.KeystoneID,
			Fee:        format.FormatNumber(s.LastTx.Fee, format.LastTxFee),
			FeeRate:    s.LastTx.FeeRate,
			BTCBlock:   s.LastTx.BTCBlock,
			Timestamp:  s.LastTx.Timestamp,
		},
	}
}

// FetchStats downloads the page of a pubkey and extracts its statistics.
// Sections missing from the page leave their fields empty without an error.
func (c *Client) FetchStats(ctx context.Context, pubkey string) (Stats, time.Duration, error) {
	doc, latency, err := c.fetchPage(ctx, c.PageURL(pubkey))
	if err != nil {
		return Stats{}, latency, err
	}
	return StatsFromRecords(Extract(doc, StatsSchema)), latency, nil
}
