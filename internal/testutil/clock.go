package testutil

import (
	"fmt"
	"time"
)

// NowAt returns a clock function pinned to the given instant, for injecting
// into components that carry a now() hook.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics. Test fixtures only.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(fmt.Sprintf("testutil: bad RFC3339 time %q: %v", v, err))
	}
	return t
}
