// Package display contains terminal formatting logic for lookup results.
//
// Commands keep fetching and parsing separate from rendering concerns by
// delegating all human-readable output to formatters in this package.
package display

import "io"

// Formatter writes formatted output to a writer.
type Formatter interface {
	Format(w io.Writer) error
}
