// ABOUTME: HTML utilities for stripping tags and finding images by pattern matching
// ABOUTME: Tolerates malformed and partial markup; no entity decoding is performed

package html

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
	imgSrcPattern   = regexp.MustCompile(`(?i)<img\b[^>]*?\ssrc\s*=\s*["']([^"']+)["']`)
	bodyPattern     = regexp.MustCompile(`(?is)<body\b[^>]*>(.*?)</body\s*>`)
	strayDelimiters = strings.NewReplacer("<", "", ">", "")
)

// StripTags removes every markup tag by tag-boundary matching.
// Unterminated tags lose their delimiters. Entities are left untouched.
func StripTags(s string) string {
	text := tagPattern.ReplaceAllString(s, "")
	return strayDelimiters.Replace(text)
}

// Truncate returns the first limit characters of s followed by marker.
// The marker is appended even when s is shorter than limit.
func Truncate(s string, limit int, marker string) string {
	if limit < 0 {
		limit = 0
	}
	if utf8.RuneCountInString(s) <= limit {
		return s + marker
	}

	count := 0
	for i := range s {
		if count == limit {
			return s[:i] + marker
		}
		count++
	}
	return s + marker
}

// FirstImageSrc returns the src attribute of the first <img> tag, or "".
func FirstImageSrc(s string) string {
	m := imgSrcPattern.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// LooksLikeDocument reports whether body starts like an HTML page
// rather than an XML feed.
func LooksLikeDocument(body string) bool {
	head := strings.TrimLeft(body, "\uFEFF \t\r\n")
	if len(head) > 64 {
		head = head[:64]
	}
	head = strings.ToLower(head)
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// ExtractBody returns the content of the first <body>...</body> pair.
// ok is false when no complete pair exists.
func ExtractBody(document string) (inner string, ok bool) {
	m := bodyPattern.FindStringSubmatch(document)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}
