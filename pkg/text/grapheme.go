package text

import "github.com/rivo/uniseg"

// DropLastGrapheme removes the last user-perceived character of s, so that
// backspace deletes a whole emoji or combining sequence at once.
func DropLastGrapheme(s string) string {
	if s == "" {
		return s
	}
	last := 0
	state := -1
	rest := s
	offset := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = offset
		offset += len(cluster)
	}
	return s[:last]
}

// GraphemeCount returns the number of user-perceived characters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes splits s into user-perceived characters.
func Graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
