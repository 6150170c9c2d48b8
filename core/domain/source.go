// ABOUTME: SourceDescriptor domain model describes one remote news feed
// ABOUTME: Provides validation and defensive copying for registry entries

package domain

import (
	"errors"
	"net/url"
)

// SourceDescriptor identifies where and how to fetch one feed
type SourceDescriptor struct {
	// Name is the human-readable source name reported on every item
	Name string

	// Endpoint is the absolute URL of the RSS document
	Endpoint string

	// Category is copied onto every item produced by this source
	Category string

	// Headers are sent with the outbound request; nil means defaults
	Headers map[string]string

	// Proxied routes the request through the configured CORS proxy
	Proxied bool
}

// Validate checks that the descriptor can be fetched
func (s SourceDescriptor) Validate() error {
	if s.Name == "" {
		return errors.New("source name cannot be empty")
	}

	if s.Endpoint == "" {
		return errors.New("source endpoint cannot be empty")
	}

	u, err := url.Parse(s.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("source endpoint must be an absolute http(s) URL")
	}

	return nil
}

// Clone returns a copy that shares no mutable state with s
func (s SourceDescriptor) Clone() SourceDescriptor {
	c := s
	if s.Headers != nil {
		c.Headers = make(map[string]string, len(s.Headers))
		for k, v := range s.Headers {
			c.Headers[k] = v
		}
	}
	return c
}
