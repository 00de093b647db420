package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/hemi-popstats/internal/popstats"
)

func TestWriteJSON(t *testing.T) {
	res := &popstats.Result{
		Input:    "tb1qexample",
		Pubkey:   "02abcdef",
		Resolved: true,
		URL:      "https://example.test/pubkey/02abcdef.html",
		Latency:  1500 * time.Millisecond,
		Stats: popstats.Stats{
			AllTime: popstats.AllTime{TotalTxs: "1234567", TotalFees: "1.5 BTC"},
			LastTx:  popstats.LastTx{Fee: "0.123456"},
		},
	}
	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, New(res, at)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "2026-10-16T10:00:00Z", got["timestamp"])
	assert.Equal(t, "02abcdef", got["pubkey"])
	assert.Equal(t, true, got["resolved"])
	assert.Equal(t, float64(1500), got["latency_ms"])

	raw := got["raw"].(map[string]any)["all_time"].(map[string]any)
	assert.Equal(t, "1234567", raw["total_txs"])

	formatted := got["formatted"].(map[string]any)
	assert.Equal(t, "1 234 567", formatted["all_time"].(map[string]any)["total_txs"])
	assert.Equal(t, "1.50", formatted["all_time"].(map[string]any)["total_fees"])
	assert.Equal(t, "0.12346", formatted["last_tx"].(map[string]any)["fee"])
	assert.Equal(t, "0", formatted["last_24h"].(map[string]any)["pop_txs"])
}
