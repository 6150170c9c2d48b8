// ABOUTME: Feed parser turns a raw RSS document into RawItem records
// ABOUTME: Rejects documents without an rss root and never fails the caller

package feed

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html/charset"

	"github.com/Jis87-63/noticias-moc/core/domain"
	apperrors "github.com/Jis87-63/noticias-moc/core/errors"
	"github.com/Jis87-63/noticias-moc/core/interfaces"
)

// Parser converts fetched documents into raw items
type Parser struct {
	logger interfaces.Logger
}

// NewParser creates a parser that reports rejected documents to logger
func NewParser(logger interfaces.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse returns the items of doc in document order. A malformed document or
// one whose root element is not rss is logged and yields an empty result
// with ok set to false.
func (p *Parser) Parse(doc domain.RawFeedDocument) (items []domain.RawItem, ok bool) {
	items, err := p.decode(doc)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("Discarding unparseable feed", map[string]interface{}{
				"source": doc.Source.Name,
				"error":  err.Error(),
			})
		}
		return []domain.RawItem{}, false
	}
	return items, true
}

// decode reports the failure as a *errors.ParseError
func (p *Parser) decode(doc domain.RawFeedDocument) ([]domain.RawItem, error) {
	body := strings.TrimLeft(doc.Body, "\uFEFF \t\r\n")
	if body == "" {
		return nil, &apperrors.ParseError{Source: doc.Source.Name, Message: "empty document"}
	}

	root, err := rootElement(body)
	if err != nil {
		return nil, &apperrors.ParseError{Source: doc.Source.Name, Message: "malformed XML", Err: err}
	}
	if root != "rss" {
		return nil, &apperrors.ParseError{Source: doc.Source.Name, Message: "missing rss root, found <" + root + ">"}
	}

	parsed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, &apperrors.ParseError{Source: doc.Source.Name, Message: "invalid feed", Err: err}
	}

	items := make([]domain.RawItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		items = append(items, convertItem(item))
	}
	return items, nil
}

// rootElement returns the local name of the first element in body
func rootElement(body string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(body))
	decoder.Strict = false
	decoder.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", errors.New("no root element")
			}
			return "", err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return strings.ToLower(start.Name.Local), nil
		}
	}
}

// convertItem copies the fields the normalizer reads from a gofeed item
func convertItem(item *gofeed.Item) domain.RawItem {
	raw := domain.RawItem{
		Title:         item.Title,
		Link:          item.Link,
		GUID:          item.GUID,
		Description:   item.Description,
		PubDate:       item.Published,
		PubDateParsed: item.PublishedParsed,
	}

	if raw.Description == "" {
		raw.Description = item.Content
	}

	if item.Image != nil {
		raw.Image = item.Image.URL
	}

	for _, enc := range item.Enclosures {
		if enc == nil {
			continue
		}
		raw.Enclosures = append(raw.Enclosures, domain.Enclosure{
			URL:    enc.URL,
			Length: enc.Length,
			Type:   enc.Type,
		})
	}

	return raw
}
