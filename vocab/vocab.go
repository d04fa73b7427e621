// Package vocab names the values HAL-FORMS templates and links commonly use:
// HTTP methods, submission content types, property input types and IANA link
// relations. The constants are untyped strings and can be passed straight to
// the hal builders.
package vocab

// HTTP methods a template can submit with.
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

// Content types a template submission can be encoded as.
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Input types of a template property, following the HTML input types.
const (
	PropertyHidden        = "hidden"
	PropertyText          = "text"
	PropertySearch        = "search"
	PropertyTel           = "tel"
	PropertyURL           = "url"
	PropertyEmail         = "email"
	PropertyPassword      = "password"
	PropertyDateTime      = "datetime"
	PropertyDate          = "date"
	PropertyMonth         = "month"
	PropertyWeek          = "week"
	PropertyTime          = "time"
	PropertyDateTimeLocal = "datetime-local"
	PropertyNumber        = "number"
	PropertyRange         = "range"
	PropertyColor         = "color"
	PropertyCheckbox      = "checkbox"
	PropertyRadio         = "radio"
	PropertyFile          = "file"
)
