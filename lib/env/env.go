package env

import (
	"os"
	"strconv"
)

func Debug() bool {
	return os.Getenv("DEBUG") != ""
}

// DebounceMillis overrides the redraw debounce window, mostly so tests
// and demos can shorten it.
func DebounceMillis() (int, bool) {
	if s := os.Getenv("PARTDRAW_DEBOUNCE_MS"); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil && i >= 0 {
			return int(i), true
		}
	}
	return -1, false
}
