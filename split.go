package bookindex

import "strings"

// cutLast slices s around the last instance of sep, returning the text
// before and after it. If sep doesn't appear, found is false.
func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// splitPages splits a comma separated page list into trimmed page
// tokens. Empty tokens are kept.
func splitPages(s string) []string {
	pages := strings.Split(s, ",")
	for i := range pages {
		pages[i] = strings.TrimSpace(pages[i])
	}
	return pages
}

// splitBookChunk splits "book(pages)" into the book and its page list.
// Chunks lacking either parenthesis are not book chunks.
func splitBookChunk(chunk string) (book, pages string, ok bool) {
	if !strings.Contains(chunk, "(") || !strings.Contains(chunk, ")") {
		return "", "", false
	}
	book, pages, _ = strings.Cut(chunk, "(")
	return strings.TrimSpace(book), strings.TrimSuffix(pages, ")"), true
}
