package tailcall

import (
	"fmt"
	"sort"
	"strings"

	"github.com/giltho/CompCert/rtl"
)

// Stats maps function names to the points of their calls
// that became tail calls. Functions with none are absent.
type Stats map[string][]rtl.Point

// Rewritten returns the Stats of a transformation:
// the points holding a call in orig and a tail call in transformed.
func Rewritten(orig, transformed *rtl.Program) Stats {
	stats := make(Stats)
	for _, name := range orig.Names() {
		g, ok := transformed.Funcs[name]
		if !ok {
			continue
		}
		for _, pc := range orig.Funcs[name].Code.Points() {
			_, call := orig.Funcs[name].Code[pc].(*rtl.Call)
			_, tail := g.Code.At(pc).(*rtl.Tailcall)
			if call && tail {
				stats[name] = append(stats[name], pc)
			}
		}
	}
	return stats
}

// Count returns the number of tail calls.
func (s Stats) Count() int {
	var n int
	for _, pcs := range s {
		n += len(pcs)
	}
	return n
}

// String returns space-separated name:point pairs sorted by name and point.
func (s Stats) String() string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		for _, pc := range s[name] {
			if b.Len() > 0 {
				b.WriteRune(' ')
			}
			fmt.Fprintf(&b, "%s:%d", name, pc)
		}
	}
	return b.String()
}
