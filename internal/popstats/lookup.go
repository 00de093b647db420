package popstats

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrEmptyIdentifier is returned for blank lookup inputs.
var ErrEmptyIdentifier = errors.New("identifier cannot be empty")

// Result is the outcome of one lookup.
type Result struct {
	Input    string
	Pubkey   string
	Resolved bool // the pubkey was obtained from an address page
	URL      string
	Latency  time.Duration
	Stats    Stats
}

// Lookup fetches the statistics of a pubkey or address. In address mode, and
// for addresses recognised in auto mode, the address is first resolved to its
// pubkey, costing one extra request.
func (c *Client) Lookup(ctx context.Context, input string, mode Mode) (*Result, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyIdentifier
	}

	res := &Result{Input: input, Pubkey: input}

	resolve := mode == ModeAddress || (mode == ModeAuto && c.params != nil && IsAddress(input, c.params))
	if resolve {
		pubkey, err := c.ResolvePubkey(ctx, input)
		if err != nil {
			return nil, err
		}
		res.Pubkey = pubkey
		res.Resolved = true
	}

	res.URL = c.PageURL(res.Pubkey)
	stats, latency, err := c.FetchStats(ctx, res.Pubkey)
	res.Latency = latency
	if err != nil {
		return nil, err
	}
	res.Stats = stats
	return res, nil
}
