package style

import "strings"

// placeholders replaces every %{NAME} of a known style in one pass
var placeholders = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(table))
	for _, c := range table {
		pairs = append(pairs, "%{"+c.name+"}", c.seq)
	}
	return strings.NewReplacer(pairs...)
}()

// Expand replaces each %{NAME} placeholder naming a known style with
// its escape code. Unknown names are left as they are.
func Expand(msg string) string {
	if !strings.Contains(msg, "%{") {
		return msg
	}
	return placeholders.Replace(msg)
}
