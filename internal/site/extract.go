package site

import "strings"

// Section markers the model is instructed to wrap each block in. The start
// and end marker of a block are the same literal, so a block is simply the
// text between the first and second occurrence.
const (
	HTMLMarker = "--html--"
	CSSMarker  = "--css--"
	JSMarker   = "--js--"
)

// ExtractSection returns the trimmed text strictly between the first
// occurrence of start and the first subsequent occurrence of end. If either
// marker is absent the section is treated as missing and an empty string is
// returned; no error is raised.
func ExtractSection(text, start, end string) string {
	_, after, found := strings.Cut(text, start)
	if !found {
		return ""
	}
	body, _, found := strings.Cut(after, end)
	if !found {
		return ""
	}
	return strings.TrimSpace(body)
}
