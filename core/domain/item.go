// ABOUTME: NewsItem is the normalized, externally visible news entry
// ABOUTME: RawItem and Enclosure carry loosely-typed parser output to the normalizer

package domain

import (
	"strings"
	"time"
)

// NewsItem represents one normalized entry of the aggregated feed
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
	Image       string `json:"image"`
	Audio       string `json:"audio"`
	Video       string `json:"video"`
	Source      string `json:"source"`
	Category    string `json:"category"`
}

// IsValid checks if the item has the identity fields every consumer relies on
func (n *NewsItem) IsValid() bool {
	return strings.TrimSpace(n.Title) != "" && strings.TrimSpace(n.Link) != ""
}

// RawItem is a parsed feed entry before normalization. Every field is optional.
type RawItem struct {
	Title       string
	Link        string
	GUID        string
	Description string

	// PubDate is the untouched publish date text
	PubDate string

	// PubDateParsed is set when the parser understood PubDate
	PubDateParsed *time.Time

	// Image is an item-level image exposed by feed extensions (media, itunes)
	Image string

	Enclosures []Enclosure
}

// Enclosure represents media attachment information
type Enclosure struct {
	URL    string // Media file URL
	Length string // File size in bytes
	Type   string // MIME type
}

// HasMediaType reports whether the enclosure MIME type is of the given family,
// e.g. "image", "audio" or "video"
func (e Enclosure) HasMediaType(family string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(e.Type)), family+"/")
}
