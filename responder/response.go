package responder

import (
	"net/http"

	"github.com/drblury/halweaver/hal"
	"github.com/drblury/halweaver/header"
)

// Response pairs a document with the status code and headers it is served
// with. Like hal.Document it is a value: every With method returns an updated
// copy and never touches the receiver's document or header set.
//
// The zero value is an empty document served with 200 OK.
type Response struct {
	document hal.Document
	status   int
	header   http.Header
}

// NewResponse builds the document for payload and wraps it in a 200 OK
// response. It fails with a *hal.PayloadConversionError like hal.New.
func NewResponse(payload any) (Response, error) {
	doc, err := hal.New(payload)
	if err != nil {
		return Response{}, err
	}
	return FromDocument(doc), nil
}

// FromDocument wraps doc in a 200 OK response without headers.
func FromDocument(doc hal.Document) Response {
	return Response{document: doc, status: http.StatusOK}
}

// WithLink adds link under rel on the wrapped document.
func (r Response) WithLink(rel string, link hal.Link) Response {
	r.document = r.document.WithLink(rel, link)
	return r
}

// WithLinkHref adds a plain link to href under rel.
func (r Response) WithLinkHref(rel, href string) Response {
	r.document = r.document.WithLinkHref(rel, href)
	return r
}

// MaybeWithLink adds link under rel unless it is nil.
func (r Response) MaybeWithLink(rel string, link *hal.Link) Response {
	r.document = r.document.MaybeWithLink(rel, link)
	return r
}

// WithEmbedded embeds doc under rel.
func (r Response) WithEmbedded(rel string, doc hal.Document) Response {
	r.document = r.document.WithEmbedded(rel, doc)
	return r
}

// MaybeWithEmbedded embeds doc under rel unless it is nil.
func (r Response) MaybeWithEmbedded(rel string, doc *hal.Document) Response {
	r.document = r.document.MaybeWithEmbedded(rel, doc)
	return r
}

// WithTemplate stores template under name, replacing any previous one.
func (r Response) WithTemplate(name string, template hal.Template) Response {
	r.document = r.document.WithTemplate(name, template)
	return r
}

// MaybeWithTemplate stores template under name unless it is nil.
func (r Response) MaybeWithTemplate(name string, template *hal.Template) Response {
	r.document = r.document.MaybeWithTemplate(name, template)
	return r
}

// WithStatusCode replaces the status code.
func (r Response) WithStatusCode(status int) Response {
	r.status = status
	return r
}

// WithHeader appends every value h encodes to under h's name. Values already
// present under that name are kept.
func (r Response) WithHeader(h header.Header) Response {
	if h == nil {
		return r
	}

	values := h.Values()
	if len(values) == 0 {
		return r
	}

	next := r.header.Clone()
	if next == nil {
		next = make(http.Header, 1)
	}
	for _, value := range values {
		next.Add(h.Name(), value)
	}
	r.header = next
	return r
}

// Document returns the wrapped document.
func (r Response) Document() hal.Document {
	return r.document
}

// StatusCode returns the status code, 200 when none was set.
func (r Response) StatusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// Header returns a copy of the header set.
func (r Response) Header() http.Header {
	if r.header == nil {
		return http.Header{}
	}
	return r.header.Clone()
}

// ContentType returns the media type the document will be served as.
func (r Response) ContentType() string {
	return hal.ResolveContentType(r.document)
}
