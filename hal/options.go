package hal

import "slices"

// InlineOption is one selectable value of an inline option set.
type InlineOption struct {
	Prompt *string `json:"prompt,omitempty"`
	Value  string  `json:"value"`
}

// NewInlineOption returns an option for value without a prompt.
func NewInlineOption(value string) InlineOption {
	return InlineOption{Value: value}
}

// WithPrompt sets the label shown for the option.
func (o InlineOption) WithPrompt(value string) InlineOption {
	o.Prompt = &value
	return o
}

// TemplateOptions is the set of values a TemplateProperty accepts. The set is
// either listed inline or fetched from a link; which one is fixed when the
// value is constructed and the builder methods keep it.
type TemplateOptions struct {
	inline         []InlineOption
	link           Link
	linked         bool
	maxItems       *uint32
	minItems       *uint32
	selectedValues []string
}

// InlineOptions lists the accepted values inline.
func InlineOptions(options ...InlineOption) TemplateOptions {
	return TemplateOptions{inline: slices.Clone(options)}
}

// InlineValues lists the accepted values inline, without prompts.
func InlineValues(values ...string) TemplateOptions {
	options := make([]InlineOption, 0, len(values))
	for _, value := range values {
		options = append(options, NewInlineOption(value))
	}
	return TemplateOptions{inline: options}
}

// LinkedOptions points the client at a resource listing the accepted values.
func LinkedOptions(link Link) TemplateOptions {
	return TemplateOptions{link: link, linked: true}
}

// WithMaxItems caps how many options may be selected.
func (o TemplateOptions) WithMaxItems(value uint32) TemplateOptions {
	o.maxItems = &value
	return o
}

// WithMinItems sets how many options must be selected.
func (o TemplateOptions) WithMinItems(value uint32) TemplateOptions {
	o.minItems = &value
	return o
}

// WithSelectedValue appends a preselected value.
func (o TemplateOptions) WithSelectedValue(value string) TemplateOptions {
	o.selectedValues = append(slices.Clip(o.selectedValues), value)
	return o
}

// IsInline reports whether the options are listed inline.
func (o TemplateOptions) IsInline() bool {
	return !o.linked
}

// Inline returns a copy of the inline options. It is empty for linked options.
func (o TemplateOptions) Inline() []InlineOption {
	return slices.Clone(o.inline)
}

// Link returns the options link and whether the options are linked.
func (o TemplateOptions) Link() (Link, bool) {
	return o.link, o.linked
}

// SelectedValues returns a copy of the preselected values.
func (o TemplateOptions) SelectedValues() []string {
	return slices.Clone(o.selectedValues)
}

type inlineOptionsJSON struct {
	Inline         []InlineOption `json:"inline"`
	MaxItems       *uint32        `json:"maxItems,omitempty"`
	MinItems       *uint32        `json:"minItems,omitempty"`
	SelectedValues []string       `json:"selectedValues,omitempty"`
}

type linkedOptionsJSON struct {
	Link           Link     `json:"link"`
	MaxItems       *uint32  `json:"maxItems,omitempty"`
	MinItems       *uint32  `json:"minItems,omitempty"`
	SelectedValues []string `json:"selectedValues,omitempty"`
}

// MarshalJSON renders the "inline" or "link" member followed by the bounds.
func (o TemplateOptions) MarshalJSON() ([]byte, error) {
	if o.linked {
		return jsonAPI.Marshal(linkedOptionsJSON{
			Link:           o.link,
			MaxItems:       o.maxItems,
			MinItems:       o.minItems,
			SelectedValues: o.selectedValues,
		})
	}

	inline := o.inline
	if inline == nil {
		inline = []InlineOption{}
	}
	return jsonAPI.Marshal(inlineOptionsJSON{
		Inline:         inline,
		MaxItems:       o.maxItems,
		MinItems:       o.minItems,
		SelectedValues: o.selectedValues,
	})
}
