package parser

import (
	"log/slog"

	"github.com/soclib/notableparse/pkg/table"
)

// fallbackPairs are the field pairs reconciled after extraction, in fixed
// order: where the primary is empty, the alternate's value is taken.
var fallbackPairs = []struct {
	primary   string
	alternate string
}{
	{"src_ip", "src_ip2"},
	{"dest_ip", "dest_ip2"},
}

// mergeFallback fills empty primary values from the alternate column in a
// single pass, then drops the alternate. Row count and row order are
// preserved. If either column is absent the merge is a no-op (still
// dropping a leftover alternate), so running it on already-merged output
// changes nothing.
func mergeFallback(f *table.Frame, primary, alternate string, logger *slog.Logger) {
	alt, ok := f.Column(alternate)
	if !ok {
		return
	}

	prim, ok := f.Column(primary)
	if !ok {
		f.Drop(alternate)
		return
	}

	filled := 0
	for i, v := range prim {
		if v == "" {
			prim[i] = alt[i]
			if alt[i] != "" {
				filled++
			}
		}
	}

	f.Drop(alternate)
	logger.Debug("merged fallback field", "primary", primary, "alternate", alternate, "filled", filled)
}
