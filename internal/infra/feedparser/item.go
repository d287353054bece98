package feedparser

// Item is one RSS item or Atom entry with every variant field the extractors
// look at. Fields that a given format does not carry are left empty.
type Item struct {
	Title string

	// Links holds link candidates in document order. A plain <link>text</link>
	// element sets Text; an attributed element sets Href.
	Links []Link

	Description    string // RSS description
	Summary        string // Atom summary
	ContentEncoded string // RSS content:encoded or Atom content

	Enclosures      []Media
	MediaContents   []Media
	MediaThumbnails []Media

	PubDate   string // RSS pubDate
	Published string // Atom published
	Updated   string // Atom updated
}

// Link is a link candidate.
type Link struct {
	Href string
	Text string
}

// Media is an enclosure or media-namespace reference.
type Media struct {
	URL  string
	Href string
}
