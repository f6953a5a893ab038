// Package htmltext extracts the visible text of an HTML document.
package htmltext

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// skipElements are elements whose text content is never user-visible.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// Extract returns the visible text of the document, whitespace-collapsed and
// joined with single spaces. It never fails: malformed markup degrades to
// whatever text the tokenizer can recover, possibly an empty string.
func Extract(body []byte) string {
	z := html.NewTokenizer(bytes.NewReader(body))

	var parts []string
	var skipDepth int

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; either way we return what we have.
			return strings.Join(parts, " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			if skipElements[string(name)] {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if skipElements[string(name)] && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			parts = append(parts, strings.Fields(string(z.Text()))...)
		}
	}
}
