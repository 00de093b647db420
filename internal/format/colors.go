package format

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
)

// ColorLatency renders a request duration in milliseconds, green when fast and
// red when the page took a second or more.
func ColorLatency(d time.Duration) string {
	ms := d.Milliseconds()
	switch {
	case ms < 300:
		return Green(fmt.Sprintf("%dms", ms))
	case ms < 1000:
		return Yellow(fmt.Sprintf("%dms", ms))
	default:
		return Red(fmt.Sprintf("%dms", ms))
	}
}
