//go:build unix

package debug

import (
	"log/slog"
	"testing"
)

func TestMemAttrs_LabelsPeakRSS(t *testing.T) {
	rss, err := residentBytes()
	if err != nil {
		t.Fatalf("getrusage: %v", err)
	}
	if rss == 0 {
		t.Fatalf("expected a non-zero peak rss")
	}
	found := false
	for _, a := range memAttrs(rss) {
		switch a.(slog.Attr).Key {
		case "max_rss":
			found = true
		case "rss":
			t.Fatalf("peak value must not be logged as current rss")
		}
	}
	if !found {
		t.Fatalf("expected a max_rss attribute")
	}
}
