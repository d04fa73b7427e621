package hal

// Link is a hypermedia reference rendered under "_links". Optional attributes
// are pointers so that an empty string is still rendered when set.
type Link struct {
	Href        string  `json:"href"`
	Templated   bool    `json:"templated,omitempty"`
	Type        *string `json:"type,omitempty"`
	Deprecation *string `json:"deprecation,omitempty"`
	Name        *string `json:"name,omitempty"`
	Profile     *string `json:"profile,omitempty"`
	Title       *string `json:"title,omitempty"`
	Hreflang    *string `json:"hreflang,omitempty"`
}

// NewLink returns a link to href with no hints.
func NewLink(href string) Link {
	return Link{Href: href}
}

// WithTemplated marks the href as a URI template.
func (l Link) WithTemplated() Link {
	l.Templated = true
	return l
}

// WithType sets the media type hint of the target resource.
func (l Link) WithType(value string) Link {
	l.Type = &value
	return l
}

// WithDeprecation sets a URL describing the deprecation of the link.
func (l Link) WithDeprecation(value string) Link {
	l.Deprecation = &value
	return l
}

// WithName sets the secondary key used to tell apart links sharing a relation.
func (l Link) WithName(value string) Link {
	l.Name = &value
	return l
}

// WithProfile sets the profile URI of the target resource.
func (l Link) WithProfile(value string) Link {
	l.Profile = &value
	return l
}

// WithTitle sets a human readable label for the link.
func (l Link) WithTitle(value string) Link {
	l.Title = &value
	return l
}

// WithHreflang sets the language of the target resource.
func (l Link) WithHreflang(value string) Link {
	l.Hreflang = &value
	return l
}
