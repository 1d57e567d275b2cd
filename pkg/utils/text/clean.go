// ABOUTME: Text cleanup utilities for metadata scraped from restaurant websites
// ABOUTME: Strips stray markup, decodes common entities, and normalizes whitespace

package text

import (
	"strings"
)

// maxDescriptionLength bounds scraped descriptions so clients do not
// receive arbitrarily long meta content.
const maxDescriptionLength = 300

// entityReplacements covers the entities that show up in real-world
// meta tags without pulling in a full HTML parser for plain strings.
var entityReplacements = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&#8217;", "'",
	"&rsquo;", "'",
	"&lsquo;", "'",
	"&#8220;", `"`,
	"&#8221;", `"`,
	"&ldquo;", `"`,
	"&rdquo;", `"`,
	"&mdash;", "-",
	"&ndash;", "-",
	"&hellip;", "...",
	"&#8230;", "...",
)

// Clean strips markup fragments and entities from scraped text and
// collapses runs of whitespace.
func Clean(s string) string {
	s = stripTags(s)
	s = entityReplacements.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// CleanDescription cleans scraped text and truncates it to a length
// suitable for a description field.
func CleanDescription(s string) string {
	s = Clean(s)
	if len(s) <= maxDescriptionLength {
		return s
	}

	cut := s[:maxDescriptionLength]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// stripTags removes angle-bracketed tag fragments. Meta content is
// plain text in theory, but real sites embed markup in it.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
