//go:build unix

package debug

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// rssKey names the value: getrusage only reports the peak.
const rssKey = "max_rss"

// residentBytes returns the peak resident set size of the current process.
func residentBytes() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	rss := uint64(ru.Maxrss)
	// darwin reports bytes, the others kilobytes
	if runtime.GOOS != "darwin" && runtime.GOOS != "ios" {
		rss *= 1024
	}
	return rss, nil
}
