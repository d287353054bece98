// Package feedparser decodes RSS and Atom documents into explicit typed shapes
// and maps their items onto the unified entity.Article model.
//
// Decoding is a two step process: the document type is detected first, then the
// matching gofeed sub-parser produces either an *RSSDocument or an *AtomDocument.
// Anything else decodes to Unrecognized, which yields no articles.
package feedparser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/mmcdole/gofeed/rss"
)

// Sentinel errors for document decoding.
var (
	// ErrMalformed indicates that the body looked like a feed but could not be parsed.
	ErrMalformed = errors.New("malformed feed document")

	// ErrUnrecognized indicates that the body is neither an RSS channel nor an Atom feed.
	ErrUnrecognized = errors.New("unrecognized feed document")
)

// Kind names the shape of a decoded document.
type Kind string

// Document kinds.
const (
	KindRSS          Kind = "rss"
	KindAtom         Kind = "atom"
	KindUnrecognized Kind = "unrecognized"
)

// Document is the closed set of decoded shapes: *RSSDocument, *AtomDocument or Unrecognized.
type Document interface {
	Kind() Kind
	// Title is the feed-level title, empty when the document carries none.
	Title() string
	// Items returns the document's items normalized into the extractor model.
	Items() []Item
	document()
}

// RSSDocument is a decoded RSS 2.0 (or RSS 1.0/RDF) channel.
type RSSDocument struct {
	Feed *rss.Feed
}

// Kind implements Document.
func (*RSSDocument) Kind() Kind { return KindRSS }

// Title implements Document.
func (d *RSSDocument) Title() string { return strings.TrimSpace(d.Feed.Title) }

// Items implements Document.
func (d *RSSDocument) Items() []Item {
	items := make([]Item, 0, len(d.Feed.Items))
	for _, it := range d.Feed.Items {
		if it == nil {
			continue
		}
		items = append(items, fromRSSItem(it))
	}
	return items
}

func (*RSSDocument) document() {}

// AtomDocument is a decoded Atom 0.3/1.0 feed.
type AtomDocument struct {
	Feed *atom.Feed
	// LinkTexts holds the inner text of each entry's <link> elements, by entry
	// index. gofeed keeps only attributes, so text-only links come from here.
	LinkTexts [][]string
}

// Kind implements Document.
func (*AtomDocument) Kind() Kind { return KindAtom }

// Title implements Document.
func (d *AtomDocument) Title() string { return strings.TrimSpace(d.Feed.Title) }

// Items implements Document.
func (d *AtomDocument) Items() []Item {
	items := make([]Item, 0, len(d.Feed.Entries))
	for i, e := range d.Feed.Entries {
		if e == nil {
			continue
		}
		var texts []string
		if i < len(d.LinkTexts) {
			texts = d.LinkTexts[i]
		}
		items = append(items, fromAtomEntry(e, texts))
	}
	return items
}

func (*AtomDocument) document() {}

// Unrecognized is a document that is neither RSS nor Atom.
type Unrecognized struct {
	// Detected is what the detector reported, e.g. "json" or "unknown".
	Detected string
}

// Kind implements Document.
func (Unrecognized) Kind() Kind { return KindUnrecognized }

// Title implements Document.
func (Unrecognized) Title() string { return "" }

// Items implements Document.
func (Unrecognized) Items() []Item { return nil }

func (Unrecognized) document() {}

// Decode detects the document type of body and parses it.
// An Unrecognized document is returned together with ErrUnrecognized so callers
// can either branch on the type or treat it as a failure.
func Decode(body []byte) (Document, error) {
	switch gofeed.DetectFeedType(bytes.NewReader(body)) {
	case gofeed.FeedTypeRSS:
		rp := &rss.Parser{}
		feed, err := rp.Parse(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("%w: rss: %v", ErrMalformed, err)
		}
		return &RSSDocument{Feed: feed}, nil
	case gofeed.FeedTypeAtom:
		ap := &atom.Parser{}
		feed, err := ap.Parse(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("%w: atom: %v", ErrMalformed, err)
		}
		return &AtomDocument{Feed: feed, LinkTexts: atomLinkTexts(body, len(feed.Entries))}, nil
	case gofeed.FeedTypeJSON:
		return Unrecognized{Detected: "json"}, ErrUnrecognized
	default:
		return Unrecognized{Detected: "unknown"}, ErrUnrecognized
	}
}

func fromRSSItem(it *rss.Item) Item {
	item := Item{
		Title:          it.Title,
		Description:    it.Description,
		ContentEncoded: it.Content,
		PubDate:        it.PubDate,
	}
	// it.Link and it.Enclosure hold the last element; the slices keep document order.
	for _, l := range it.Links {
		if l != "" {
			item.Links = append(item.Links, Link{Text: l})
		}
	}
	if len(it.Links) == 0 && it.Link != "" {
		item.Links = append(item.Links, Link{Text: it.Link})
	}
	// <atom:link href="..."/> inside an RSS item lands in the extension map.
	for _, l := range extensionElements(it.Extensions, "atom", "link") {
		item.Links = append(item.Links, Link{Href: l.Attrs["href"], Text: l.Value})
	}
	for _, e := range it.Enclosures {
		if e != nil {
			item.Enclosures = append(item.Enclosures, Media{URL: e.URL})
		}
	}
	if len(item.Enclosures) == 0 && it.Enclosure != nil {
		item.Enclosures = append(item.Enclosures, Media{URL: it.Enclosure.URL})
	}
	item.MediaContents, item.MediaThumbnails = mediaFromExtensions(it.Extensions)
	return item
}

func fromAtomEntry(e *atom.Entry, linkTexts []string) Item {
	item := Item{
		Title:     e.Title,
		Summary:   e.Summary,
		Published: e.Published,
		Updated:   e.Updated,
	}
	if e.Content != nil {
		item.ContentEncoded = e.Content.Value
	}
	for _, l := range e.Links {
		if l == nil {
			continue
		}
		if l.Rel == "enclosure" {
			item.Enclosures = append(item.Enclosures, Media{URL: l.Href})
			continue
		}
		if l.Href != "" {
			item.Links = append(item.Links, Link{Href: l.Href})
		}
	}
	if len(item.Links) == 0 {
		for _, t := range linkTexts {
			item.Links = append(item.Links, Link{Text: t})
		}
	}
	item.MediaContents, item.MediaThumbnails = mediaFromExtensions(e.Extensions)
	return item
}

type atomTextFeed struct {
	Entries []struct {
		Links []struct {
			Text string `xml:",chardata"`
		} `xml:"link"`
	} `xml:"entry"`
}

// atomLinkTexts re-reads an Atom body for the non-empty inner text of every
// entry's <link> elements. The result is dropped unless it lines up with the
// entries gofeed found; a body encoding/xml rejects yields nil.
func atomLinkTexts(body []byte, entries int) [][]string {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }

	var doc atomTextFeed
	if err := dec.Decode(&doc); err != nil || len(doc.Entries) != entries {
		return nil
	}
	out := make([][]string, len(doc.Entries))
	for i, e := range doc.Entries {
		for _, l := range e.Links {
			if t := strings.TrimSpace(l.Text); t != "" {
				out[i] = append(out[i], t)
			}
		}
	}
	return out
}

// mediaFromExtensions collects media:content and media:thumbnail elements,
// including those nested in a media:group.
func mediaFromExtensions(exts ext.Extensions) (contents, thumbnails []Media) {
	collect := func(els map[string][]ext.Extension) {
		for _, c := range els["content"] {
			contents = append(contents, Media{URL: c.Attrs["url"], Href: c.Attrs["href"]})
		}
		for _, th := range els["thumbnail"] {
			thumbnails = append(thumbnails, Media{URL: th.Attrs["url"]})
		}
	}

	media, ok := exts["media"]
	if !ok {
		return nil, nil
	}
	collect(media)
	for _, g := range media["group"] {
		collect(g.Children)
	}
	return contents, thumbnails
}

func extensionElements(exts ext.Extensions, prefix, name string) []ext.Extension {
	return exts[prefix][name]
}
