// ABOUTME: Feed source registry holds the ordered, read-only list of news sources
// ABOUTME: Ships the built-in Mozambican sources and loads replacements from TOML

package sources

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/Jis87-63/noticias-moc/core/domain"
)

// Registry is an immutable, ordered list of feed sources
type Registry struct {
	sources []domain.SourceDescriptor
}

// NewRegistry validates the list and stores a private copy of it
func NewRegistry(list []domain.SourceDescriptor) (*Registry, error) {
	seen := make(map[string]struct{}, len(list))
	copied := make([]domain.SourceDescriptor, 0, len(list))

	for i, s := range list {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("source %d (%q): %w", i, s.Name, err)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("duplicate source name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		copied = append(copied, s.Clone())
	}

	return &Registry{sources: copied}, nil
}

// All returns the sources in registration order. Callers may modify the
// returned slice freely.
func (r *Registry) All() []domain.SourceDescriptor {
	out := make([]domain.SourceDescriptor, len(r.sources))
	for i, s := range r.sources {
		out[i] = s.Clone()
	}
	return out
}

// Len returns the number of registered sources
func (r *Registry) Len() int {
	return len(r.sources)
}

// TomlSource is one [[source]] table of a sources file
type TomlSource struct {
	Name     string            `toml:"name"`
	Endpoint string            `toml:"endpoint"`
	Category string            `toml:"category"`
	Proxied  bool              `toml:"proxied"`
	Headers  map[string]string `toml:"headers"`
}

// TomlSources is the top-level layout of a sources file
type TomlSources struct {
	Sources []TomlSource `toml:"source"`
}

// LoadFile reads a TOML sources file into a registry
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading sources file: %w", err)
	}

	var parsed TomlSources
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing sources file: %w", err)
	}

	if len(parsed.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s defines no [[source]] entries", path)
	}

	list := make([]domain.SourceDescriptor, 0, len(parsed.Sources))
	for _, s := range parsed.Sources {
		list = append(list, domain.SourceDescriptor{
			Name:     s.Name,
			Endpoint: s.Endpoint,
			Category: s.Category,
			Headers:  s.Headers,
			Proxied:  s.Proxied,
		})
	}

	return NewRegistry(list)
}

// Load returns the registry from path, or the built-in list when path is empty
func Load(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(Default())
	}
	return LoadFile(path)
}
