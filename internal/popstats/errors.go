package popstats

import (
	"errors"
	"fmt"
)

// ErrPubkeyNotFound is matched by every *ResolutionError.
var ErrPubkeyNotFound = errors.New("pubkey not found")

// NetworkError reports a failed page request: transport failure, timeout, or a
// non-2xx response. StatusCode and StatusText are zero when no response arrived.
type NetworkError struct {
	URL        string
	StatusCode int
	StatusText string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: HTTP %d %s", e.URL, e.StatusCode, e.StatusText)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ResolutionError reports that the page fetched for an address carried no
// meta-refresh pointing at a pubkey page.
type ResolutionError struct {
	Address string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Address, ErrPubkeyNotFound)
}

func (e *ResolutionError) Is(target error) bool { return target == ErrPubkeyNotFound }
