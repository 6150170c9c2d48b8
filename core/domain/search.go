// ABOUTME: Search domain models for the video search proxy
// ABOUTME: Defines the normalized shape returned by the third-party search API

package domain

// VideoResult represents one video returned by the search API
type VideoResult struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration"`
	Views     string `json:"views"`
	Channel   string `json:"channel"`
}
