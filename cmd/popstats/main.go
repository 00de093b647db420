// Command popstats looks up PoP mining statistics of a Hemi pubkey, or of the
// pubkey behind a Bitcoin address, on the public statistics site.
//
// Usage examples:
//
//	popstats                              ← interactive loop
//	popstats --lang fr                    ← interactive loop, French prompts
//	popstats lookup 02ab...ef             ← one lookup, terminal output
//	popstats lookup tb1q... --format json ← one lookup, JSON on stdout
//	popstats resolve tb1q...              ← print the pubkey of an address
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
