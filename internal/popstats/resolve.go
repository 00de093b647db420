package popstats

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var refreshPubkey = regexp.MustCompile(`(?i)pubkey/([0-9a-f]+)\.html`)

// ResolvePubkey looks up the pubkey behind a Bitcoin address. The site answers
// the address page with a meta-refresh whose target is the pubkey page; the
// hex token of that target is returned as written.
func (c *Client) ResolvePubkey(ctx context.Context, address string) (string, error) {
	address = strings.ToUpper(address)

	doc, _, err := c.fetchPage(ctx, c.PageURL(address))
	if err != nil {
		return "", err
	}

	pubkey, ok := refreshTarget(doc)
	if !ok {
		return "", &ResolutionError{Address: address}
	}

	c.logger.Debug().Str("address", address).Str("pubkey", pubkey).Msg("address resolved")
	return pubkey, nil
}

// refreshTarget finds the first meta-refresh whose content embeds a pubkey page.
func refreshTarget(doc *goquery.Document) (string, bool) {
	var pubkey string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		equiv, _ := s.Attr("http-equiv")
		if !strings.EqualFold(strings.TrimSpace(equiv), "refresh") {
			return true
		}
		content, _ := s.Attr("content")
		if m := refreshPubkey.FindStringSubmatch(content); m != nil {
			pubkey = m[1]
			return false
		}
		return true
	})
	return pubkey, pubkey != ""
}
