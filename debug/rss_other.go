//go:build !unix && !windows

package debug

import "errors"

const rssKey = "rss"

func residentBytes() (uint64, error) {
	return 0, errors.New("rss not supported on this platform")
}
