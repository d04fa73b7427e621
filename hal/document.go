package hal

import (
	"maps"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

const (
	linksKey     = "_links"
	embeddedKey  = "_embedded"
	templatesKey = "_templates"
)

// Document is a HAL resource: a JSON payload plus links, embedded documents
// and HAL-FORMS templates. The zero value is an empty document.
//
// Document has value semantics. Every With method returns an updated copy
// and leaves the receiver untouched, so documents can be shared between
// goroutines and reused as starting points without copying.
type Document struct {
	payload   payload
	links     map[string]Relation[Link]
	embedded  map[string]Relation[Document]
	templates map[string]Template
}

// New returns a document exposing value as its payload. The value is
// converted to JSON up front and a *PayloadConversionError is returned when
// that fails.
//
// Only a value that encodes as a JSON object can sit next to "_links",
// "_embedded" and "_templates". A scalar or array payload is rendered on its
// own while the document has no hypermedia and is silently left out of the
// output once a link, embedded document or template is added. Wrap such
// values in a struct or map to keep them.
func New(value any) (Document, error) {
	p, err := convertPayload(value)
	if err != nil {
		return Document{}, err
	}
	return Document{payload: p}, nil
}

// MustNew is like New but panics if the payload cannot be converted.
func MustNew(value any) Document {
	doc, err := New(value)
	if err != nil {
		panic(err)
	}
	return doc
}

// WithLink adds link under rel. Links added under the same relation
// accumulate in insertion order.
func (d Document) WithLink(rel string, link Link) Document {
	d.links = withRelation(d.links, rel, link)
	return d
}

// WithLinkHref adds a plain link to href under rel.
func (d Document) WithLinkHref(rel, href string) Document {
	return d.WithLink(rel, NewLink(href))
}

// MaybeWithLink adds link under rel unless link is nil.
func (d Document) MaybeWithLink(rel string, link *Link) Document {
	if link == nil {
		return d
	}
	return d.WithLink(rel, *link)
}

// WithEmbedded embeds doc under rel. Documents embedded under the same
// relation accumulate in insertion order.
func (d Document) WithEmbedded(rel string, doc Document) Document {
	d.embedded = withRelation(d.embedded, rel, doc)
	return d
}

// MaybeWithEmbedded embeds doc under rel unless doc is nil.
func (d Document) MaybeWithEmbedded(rel string, doc *Document) Document {
	if doc == nil {
		return d
	}
	return d.WithEmbedded(rel, *doc)
}

// WithTemplate sets the template called name, replacing any template already
// registered under that name.
func (d Document) WithTemplate(name string, template Template) Document {
	templates := make(map[string]Template, len(d.templates)+1)
	maps.Copy(templates, d.templates)
	templates[name] = template
	d.templates = templates
	return d
}

// MaybeWithTemplate sets the template called name unless template is nil.
func (d Document) MaybeWithTemplate(name string, template *Template) Document {
	if template == nil {
		return d
	}
	return d.WithTemplate(name, *template)
}

// Link returns the links registered under rel.
func (d Document) Link(rel string) (Relation[Link], bool) {
	r, ok := d.links[rel]
	return r, ok
}

// Embedded returns the documents embedded under rel.
func (d Document) Embedded(rel string) (Relation[Document], bool) {
	r, ok := d.embedded[rel]
	return r, ok
}

// Template returns the template called name.
func (d Document) Template(name string) (Template, bool) {
	t, ok := d.templates[name]
	return t, ok
}

// Relations returns the sorted link relation names.
func (d Document) Relations() []string {
	return slices.Sorted(maps.Keys(d.links))
}

// EmbeddedRelations returns the sorted embedded relation names.
func (d Document) EmbeddedRelations() []string {
	return slices.Sorted(maps.Keys(d.embedded))
}

// TemplateNames returns the sorted template names.
func (d Document) TemplateNames() []string {
	return slices.Sorted(maps.Keys(d.templates))
}

// MarshalJSON renders "_links", "_embedded" and "_templates" first, each
// omitted when empty and keyed in sorted order, followed by the payload
// fields in their own order.
func (d Document) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	writeDocument(stream, d)
	return streamBytes(stream)
}

func (d Document) hasHypermedia() bool {
	return len(d.links) > 0 || len(d.embedded) > 0 || len(d.templates) > 0
}

func writeDocument(stream *jsoniter.Stream, d Document) {
	// A scalar or array payload has no keys to merge, it can only stand alone.
	if d.payload.bare != nil && !d.hasHypermedia() {
		stream.WriteRaw(string(d.payload.bare))
		return
	}

	reserved := make(map[string]bool, 3)
	field := func(name string) {
		if len(reserved) > 0 {
			stream.WriteMore()
		}
		reserved[name] = true
		stream.WriteObjectField(name)
	}

	stream.WriteObjectStart()
	if len(d.links) > 0 {
		field(linksKey)
		writeSorted(stream, d.links, func(s *jsoniter.Stream, r Relation[Link]) {
			writeRelation(s, r, writeValue[Link])
		})
	}
	if len(d.embedded) > 0 {
		field(embeddedKey)
		writeSorted(stream, d.embedded, func(s *jsoniter.Stream, r Relation[Document]) {
			writeRelation(s, r, writeDocument)
		})
	}
	if len(d.templates) > 0 {
		field(templatesKey)
		writeSorted(stream, d.templates, writeValue[Template])
	}

	wrote := len(reserved) > 0
	for _, m := range d.payload.members {
		if reserved[m.key] {
			continue
		}
		if wrote {
			stream.WriteMore()
		}
		wrote = true
		stream.WriteObjectField(validUTF8(m.key))
		stream.WriteRaw(string(m.raw))
	}
	stream.WriteObjectEnd()
}

func withRelation[T any](m map[string]Relation[T], key string, value T) map[string]Relation[T] {
	next := make(map[string]Relation[T], len(m)+1)
	maps.Copy(next, m)
	if existing, ok := next[key]; ok {
		next[key] = existing.Insert(value)
	} else {
		next[key] = Single(value)
	}
	return next
}
