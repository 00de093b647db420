package popstats

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAddress(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		params *chaincfg.Params
		want   bool
	}{
		{"testnet p2wsh", testAddress, &chaincfg.TestNet3Params, true},
		{"testnet p2pkh", "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn", &chaincfg.TestNet3Params, true},
		{"mainnet p2pkh on mainnet", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &chaincfg.MainNetParams, true},
		{"mainnet p2pkh on testnet", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &chaincfg.TestNet3Params, false},
		{"testnet bech32 on mainnet", testAddress, &chaincfg.MainNetParams, false},
		{"compressed pubkey", testPubkey, &chaincfg.TestNet3Params, false},
		{"short hex", "ABCDEF0123", &chaincfg.TestNet3Params, false},
		{"garbage", "not an address", &chaincfg.TestNet3Params, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAddress(tt.input, tt.params))
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, in := range []string{"auto", "PUBKEY", " address "} {
		m, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, Mode(strings.ToLower(strings.TrimSpace(in))), m)
	}
	_, err := ParseMode("guess")
	assert.Error(t, err)
}

func TestNetParams(t *testing.T) {
	p, err := NetParams("testnet3")
	require.NoError(t, err)
	assert.Equal(t, chaincfg.TestNet3Params.Name, p.Name)

	p, err = NetParams("mainnet")
	require.NoError(t, err)
	assert.Equal(t, chaincfg.MainNetParams.Name, p.Name)

	_, err = NetParams("dogecoin")
	assert.Error(t, err)
}

func TestExtractCustomSchema(t *testing.T) {
	page := `<html><body>
<h3>Miner Totals</h3>
<table>
  <tr><th>a</th><th>b</th></tr>
  <tr><td>first</td><td>7 units</td></tr>
  <tr><td>second</td><td>8 units</td></tr>
</table>
<h2>Miner Totals</h2>
<p>not a table</p>
<table><tr><td>skipped</td></tr></table>
</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	schema := Schema{
		{
			Key:     "totals",
			Heading: "Miner Totals",
			Tag:     "h3",
			Row:     2,
			Columns: []Column{
				{Field: "name", Index: 0},
				{Field: "amount", Index: 1, Remove: " units"},
				{Field: "missing", Index: 5},
			},
		},
		{
			Key:     "h2_totals",
			Heading: "Miner Totals",
			Row:     0,
			Columns: []Column{{Field: "name", Index: 0}},
		},
	}

	records := Extract(doc, schema)
	assert.Equal(t, "second", records.Get("totals", "name"))
	assert.Equal(t, "8", records.Get("totals", "amount"))
	assert.Equal(t, "", records.Get("totals", "missing"))
	assert.Equal(t, "", records.Get("h2_totals", "name"), "heading must be directly followed by the table")
	assert.Equal(t, "", records.Get("unknown", "name"))
}
