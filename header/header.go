// Package header provides typed HTTP headers for responder.Response. Each
// header knows its canonical name and encodes itself into one or more raw
// values; the response appends every value under that name.
package header

import (
	"net/http"
	"strings"
	"time"
)

// Header is a typed HTTP header.
type Header interface {
	// Name returns the header field name.
	Name() string
	// Values returns the encoded field values, one per header line.
	Values() []string
}

type raw struct {
	name   string
	values []string
}

// Raw returns a header called name with the given values, appended as is.
func Raw(name string, values ...string) Header {
	return raw{name: http.CanonicalHeaderKey(name), values: values}
}

func (h raw) Name() string     { return h.name }
func (h raw) Values() []string { return h.values }

// ContentType returns a Content-Type header. Responders overwrite the
// content type with the one resolved from the document, so this is only
// useful on responses that are not rendered as documents.
func ContentType(mediaType string) Header {
	return raw{name: "Content-Type", values: []string{mediaType}}
}

// Location returns a Location header pointing at url.
func Location(url string) Header {
	return raw{name: "Location", values: []string{url}}
}

// LastModified returns a Last-Modified header in the HTTP date format.
func LastModified(t time.Time) Header {
	return raw{name: "Last-Modified", values: []string{t.UTC().Format(http.TimeFormat)}}
}

// Vary returns a Vary header listing the request fields the response
// depends on.
func Vary(fields ...string) Header {
	return raw{name: "Vary", values: []string{strings.Join(fields, ", ")}}
}

// Allow returns an Allow header listing the supported methods.
func Allow(methods ...string) Header {
	return raw{name: "Allow", values: []string{strings.Join(methods, ", ")}}
}

// ETag returns a strong entity tag for tag, which must not be quoted.
func ETag(tag string) Header {
	return raw{name: "ETag", values: []string{`"` + tag + `"`}}
}

// WeakETag returns a weak entity tag for tag, which must not be quoted.
func WeakETag(tag string) Header {
	return raw{name: "ETag", values: []string{`W/"` + tag + `"`}}
}
