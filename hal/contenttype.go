package hal

// Media types a Document can be served as.
const (
	MediaTypeJSON     = "application/json"
	MediaTypeHAL      = "application/hal+json"
	MediaTypeHALForms = "application/prs.hal-forms+json"
)

// ResolveContentType picks the media type for doc. Any template anywhere in
// the embedded tree makes it HAL-FORMS; otherwise top-level links or embedded
// documents make it HAL; anything else is plain JSON.
func ResolveContentType(doc Document) string {
	switch {
	case doc.HasTemplates():
		return MediaTypeHALForms
	case len(doc.links) > 0 || len(doc.embedded) > 0:
		return MediaTypeHAL
	default:
		return MediaTypeJSON
	}
}

// ContentType is shorthand for ResolveContentType(d).
func (d Document) ContentType() string {
	return ResolveContentType(d)
}

// HasTemplates reports whether d or any document embedded in it, at any
// depth, carries a template.
func (d Document) HasTemplates() bool {
	if len(d.templates) > 0 {
		return true
	}
	for _, rel := range d.embedded {
		for doc := range rel.All() {
			if doc.HasTemplates() {
				return true
			}
		}
	}
	return false
}
