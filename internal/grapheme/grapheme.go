// Package grapheme measures and clips text in terminal cells without
// splitting grapheme clusters.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// ClusterWidth is the number of terminal cells a single cluster occupies.
// Control clusters such as newlines and tabs occupy none.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	return runewidth.StringWidth(cluster)
}

// Width returns the display width of text in terminal cells.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += ClusterWidth(c)
	}
	return w
}

// Truncate returns the longest prefix of text that fits in width cells.
// When text does not fit and tail is non-empty, tail replaces the clipped
// end; tail is dropped if it alone does not fit.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	tw := Width(tail)
	if tw > width {
		tail, tw = "", 0
	}

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		cw := ClusterWidth(c)
		if used+cw > width-tw {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	sb.WriteString(tail)
	return sb.String()
}

// Flatten replaces line breaks and tabs with spaces so text renders on one
// terminal row.
func Flatten(text string) string {
	if !strings.ContainsAny(text, "\r\n\t") {
		return text
	}
	r := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")
	return r.Replace(text)
}
