package text

import (
	"strings"

	"github.com/ib-77/lazyv/pkg/val"
	"github.com/ib-77/lazyv/pkg/val/comb"
)

// Join concatenates the items of mv with sep between them, as a lazy
// reduction over the indexed items. An empty multi-value joins to "".
func Join(mv val.Value[[]string], sep string) val.Value[string] {
	return comb.Reduction(val.Lit(""), comb.Indexed(mv),
		func(acc string, e comb.Entry[string]) string {
			if e.Index == 0 {
				return e.Item
			}
			return acc + sep + e.Item
		})
}

// Lines splits a string value into a multi-value of lines, dropping a
// single trailing newline.
func Lines(s val.Value[string]) val.Value[[]string] {
	return comb.Trans(s, func(v string) []string {
		return strings.Split(strings.TrimSuffix(v, "\n"), "\n")
	})
}

// Fields splits a string value around runs of whitespace.
func Fields(s val.Value[string]) val.Value[[]string] {
	return comb.Trans(s, strings.Fields)
}
