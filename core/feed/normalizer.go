// ABOUTME: Item normalizer converts RawItem records into NewsItem values
// ABOUTME: Cleans descriptions, resolves links and picks image, audio and video media

package feed

import (
	"net/url"
	"strings"
	"time"

	"github.com/Jis87-63/noticias-moc/core/domain"
	htmlutil "github.com/Jis87-63/noticias-moc/pkg/utils/html"
	timeutil "github.com/Jis87-63/noticias-moc/pkg/utils/time"
)

const (
	// DescriptionLimit is the number of characters kept from a description
	DescriptionLimit = 300

	// EllipsisMarker is appended to every description
	EllipsisMarker = "..."
)

// Normalize builds the NewsItem for raw. ok is false when the item has no
// title or no link and must be dropped. now is used when the item carries no
// publish date.
func Normalize(raw domain.RawItem, source domain.SourceDescriptor, now time.Time) (item domain.NewsItem, ok bool) {
	title := strings.TrimSpace(raw.Title)

	// guid values are kept verbatim; only real links are resolved
	link := strings.TrimSpace(raw.Link)
	if link != "" {
		link = resolveURL(source.Endpoint, link)
	} else {
		link = strings.TrimSpace(raw.GUID)
	}

	item = domain.NewsItem{Title: title, Link: link}
	if !item.IsValid() {
		return domain.NewsItem{}, false
	}

	item.Description = cleanDescription(raw.Description)
	item.PublishedAt = publishedAt(raw, now)
	item.Image = findImage(raw, source.Endpoint)
	item.Audio = findEnclosure(raw.Enclosures, "audio")
	item.Video = findEnclosure(raw.Enclosures, "video")
	item.Source = source.Name
	item.Category = source.Category

	return item, true
}

// NormalizeAll normalizes items in order, dropping incomplete ones
func NormalizeAll(raws []domain.RawItem, source domain.SourceDescriptor, now time.Time) []domain.NewsItem {
	items := make([]domain.NewsItem, 0, len(raws))
	for _, raw := range raws {
		if item, ok := Normalize(raw, source, now); ok {
			items = append(items, item)
		}
	}
	return items
}

// cleanDescription strips markup and truncates. Whitespace is kept as the
// feed wrote it.
func cleanDescription(description string) string {
	text := htmlutil.StripTags(description)
	return htmlutil.Truncate(text, DescriptionLimit, EllipsisMarker)
}

// publishedAt renders the publish date in ISO-8601 when it can be parsed.
// Unparseable text is passed through; a missing date becomes now.
func publishedAt(raw domain.RawItem, now time.Time) string {
	if raw.PubDateParsed != nil && !raw.PubDateParsed.IsZero() {
		return timeutil.FormatISO(*raw.PubDateParsed)
	}

	text := strings.TrimSpace(raw.PubDate)
	if text == "" {
		return timeutil.FormatISO(now)
	}

	if t := timeutil.ParseFlexibleTime(text); !t.IsZero() {
		return timeutil.FormatISO(t)
	}
	return text
}

// findImage returns the inline description image, then an image enclosure,
// then the item image exposed by feed extensions
func findImage(raw domain.RawItem, base string) string {
	if src := htmlutil.FirstImageSrc(raw.Description); src != "" {
		return resolveURL(base, src)
	}
	if enc := findEnclosure(raw.Enclosures, "image"); enc != "" {
		return enc
	}
	return strings.TrimSpace(raw.Image)
}

// findEnclosure returns the URL of the first enclosure of the media family
func findEnclosure(enclosures []domain.Enclosure, family string) string {
	for _, enc := range enclosures {
		u := strings.TrimSpace(enc.URL)
		if u != "" && enc.HasMediaType(family) {
			return u
		}
	}
	return ""
}

// resolveURL makes ref absolute against base. Refs that cannot be parsed
// are returned unchanged.
func resolveURL(base, ref string) string {
	refURL, err := url.Parse(ref)
	if err != nil || refURL.IsAbs() {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
