package sets

import (
	"strconv"
	"strings"
)

// Set represents a collection of unique string values.
type Set map[string]struct{}

// OrderedSet is a slice of strings. Functions returning an OrderedSet, like
// MakeSlice, guarantee it is sorted and free of duplicates.
type OrderedSet []string

// Add inserts s into the set.
func (s Set) Add(item string) {
	s[item] = struct{}{}
}

// Contains reports whether item is a member of the set.
func (s Set) Contains(item string) bool {
	_, found := s[item]
	return found
}

// Len returns the number of elements.
func (s Set) Len() int {
	return len(s)
}

// SetFormatter provides a lazy, fmt.Stringer-compliant way to format a Set
// for logging. Sorting and joining only happen when String() is called.
type SetFormatter struct {
	set   Set
	limit int
}

// FormatSetLimit returns a SetFormatter for logging statements. At most
// limit elements are printed, followed by a count of the omitted ones; a
// limit of zero or less prints all of them.
func FormatSetLimit(set Set, limit int) SetFormatter {
	return SetFormatter{set: set, limit: limit}
}

// String implements the fmt.Stringer interface.
func (sf SetFormatter) String() string {
	if len(sf.set) == 0 {
		return "[]"
	}
	slice := MakeSlice(sf.set)
	if sf.limit > 0 && len(slice) > sf.limit {
		omitted := len(slice) - sf.limit
		return "[" + strings.Join(slice[:sf.limit], ", ") + ", ... (" + strconv.Itoa(omitted) + " more)]"
	}
	return "[" + strings.Join(slice, ", ") + "]"
}

