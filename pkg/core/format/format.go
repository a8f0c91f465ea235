// Package format turns line sets into display text.
package format

import (
	"strings"

	"github.com/Qendolin/line-set-tool/pkg/core/sets"
)

// Separator joins the lines of a formatted result.
const Separator = "\n"

// Lines returns the elements of set in the order Format writes them:
// ascending byte-wise string comparison.
func Lines(set sets.Set) []string {
	return sets.MakeSlice(set)
}

// Format returns the elements of set, one per line, joined by Separator.
// There is no trailing newline and no escaping. An empty set yields "".
func Format(set sets.Set) string {
	return strings.Join(Lines(set), Separator)
}
