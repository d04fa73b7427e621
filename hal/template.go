package hal

import "slices"

// Template describes one action a client can take on the resource, rendered
// under "_templates". The zero value is a valid, empty template.
type Template struct {
	ContentType *string            `json:"contentType,omitempty"`
	Method      *string            `json:"method,omitempty"`
	Target      *string            `json:"target,omitempty"`
	Title       *string            `json:"title,omitempty"`
	Properties  []TemplateProperty `json:"properties,omitempty"`
}

// WithContentType sets the media type the submission must use.
func (t Template) WithContentType(value string) Template {
	t.ContentType = &value
	return t
}

// WithMethod sets the HTTP method of the submission.
func (t Template) WithMethod(value string) Template {
	t.Method = &value
	return t
}

// WithTarget sets the URL the submission is sent to.
func (t Template) WithTarget(value string) Template {
	t.Target = &value
	return t
}

// WithTitle sets a human readable label for the action.
func (t Template) WithTitle(value string) Template {
	t.Title = &value
	return t
}

// WithProperty appends an input field.
func (t Template) WithProperty(property TemplateProperty) Template {
	t.Properties = append(slices.Clip(t.Properties), property)
	return t
}

// TemplateProperty is one input field of a Template.
type TemplateProperty struct {
	Name        string           `json:"name"`
	Prompt      *string          `json:"prompt,omitempty"`
	ReadOnly    bool             `json:"readOnly,omitempty"`
	Regex       *string          `json:"regex,omitempty"`
	Required    bool             `json:"required,omitempty"`
	Templated   bool             `json:"templated,omitempty"`
	Value       *string          `json:"value,omitempty"`
	Cols        *uint32          `json:"cols,omitempty"`
	Max         *uint32          `json:"max,omitempty"`
	MaxLength   *uint32          `json:"maxLength,omitempty"`
	Min         *uint32          `json:"min,omitempty"`
	MinLength   *uint32          `json:"minLength,omitempty"`
	Options     *TemplateOptions `json:"options,omitempty"`
	Placeholder *string          `json:"placeholder,omitempty"`
	Rows        *uint32          `json:"rows,omitempty"`
	Step        *uint32          `json:"step,omitempty"`
	Type        *string          `json:"type,omitempty"`
}

// NewProperty returns a property named name with every other field unset.
func NewProperty(name string) TemplateProperty {
	return TemplateProperty{Name: name}
}

// WithPrompt sets the human readable label of the field.
func (p TemplateProperty) WithPrompt(value string) TemplateProperty {
	p.Prompt = &value
	return p
}

// WithReadOnly marks the field as not editable by the client.
func (p TemplateProperty) WithReadOnly(value bool) TemplateProperty {
	p.ReadOnly = value
	return p
}

// WithRegex sets the pattern the value must match.
func (p TemplateProperty) WithRegex(value string) TemplateProperty {
	p.Regex = &value
	return p
}

// WithRequired marks the field as mandatory.
func (p TemplateProperty) WithRequired(value bool) TemplateProperty {
	p.Required = value
	return p
}

// WithTemplated marks Value as a URI template.
func (p TemplateProperty) WithTemplated() TemplateProperty {
	p.Templated = true
	return p
}

// WithValue sets the initial value.
func (p TemplateProperty) WithValue(value string) TemplateProperty {
	p.Value = &value
	return p
}

// WithCols sets the visible width of a textarea.
func (p TemplateProperty) WithCols(value uint32) TemplateProperty {
	p.Cols = &value
	return p
}

// WithMax sets the largest accepted numeric value.
func (p TemplateProperty) WithMax(value uint32) TemplateProperty {
	p.Max = &value
	return p
}

// WithMaxLength sets the longest accepted value in characters.
func (p TemplateProperty) WithMaxLength(value uint32) TemplateProperty {
	p.MaxLength = &value
	return p
}

// WithMin sets the smallest accepted numeric value.
func (p TemplateProperty) WithMin(value uint32) TemplateProperty {
	p.Min = &value
	return p
}

// WithMinLength sets the shortest accepted value in characters.
func (p TemplateProperty) WithMinLength(value uint32) TemplateProperty {
	p.MinLength = &value
	return p
}

// WithOptions restricts the accepted values to an option set.
func (p TemplateProperty) WithOptions(options TemplateOptions) TemplateProperty {
	p.Options = &options
	return p
}

// WithPlaceholder sets the hint shown while the field is empty.
func (p TemplateProperty) WithPlaceholder(value string) TemplateProperty {
	p.Placeholder = &value
	return p
}

// WithRows sets the visible height of a textarea.
func (p TemplateProperty) WithRows(value uint32) TemplateProperty {
	p.Rows = &value
	return p
}

// WithStep sets the granularity of numeric values.
func (p TemplateProperty) WithStep(value uint32) TemplateProperty {
	p.Step = &value
	return p
}

// WithType sets the input type, such as "text" or "email".
func (p TemplateProperty) WithType(value string) TemplateProperty {
	p.Type = &value
	return p
}
