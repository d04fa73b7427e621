package responder

import (
	"fmt"
	"log/slog"
	"net/http"
)

const (
	problemContentType = "application/problem+json"
	statusDocBaseURL   = "https://httpstatuses.io"
)

// ErrorClassifierFunc maps an error to the HTTP status of its problem
// document. Returning false leaves the error to the 500 fallback.
type ErrorClassifierFunc func(err error) (status int, handled bool)

// TraceIDFunc returns the correlation identifier stamped on problem documents.
type TraceIDFunc func() string

// ResponderOption configures a Responder.
type ResponderOption func(*Responder)

// StatusMetadata describes the problem document and log record produced for
// one HTTP status. Empty fields fall back to defaults: the status text as
// title and log message, a httpstatuses.io type URI and level ERROR.
type StatusMetadata struct {
	TypeURI  string
	Title    string
	LogLevel slog.Leveler
	LogMsg   string
}

func (m StatusMetadata) withDefaults(status int) StatusMetadata {
	if m.LogLevel == nil {
		m.LogLevel = slog.LevelError
	}
	if m.Title == "" {
		m.Title = http.StatusText(status)
	}
	if m.LogMsg == "" {
		m.LogMsg = m.Title
	}
	if m.TypeURI == "" {
		m.TypeURI = fmt.Sprintf("%s/%d", statusDocBaseURL, status)
	}
	return m
}

// Responder writes HAL responses and problem documents for HTTP handlers.
type Responder struct {
	log        *slog.Logger
	statuses   map[int]StatusMetadata
	classifier ErrorClassifierFunc
	traceID    TraceIDFunc
}

// NewResponder returns a Responder that logs to slog.Default and stamps
// problems with ULID trace ids unless options say otherwise.
func NewResponder(opts ...ResponderOption) *Responder {
	r := &Responder{
		log:      slog.Default(),
		statuses: defaultStatuses(),
		traceID:  newTraceID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithLogger injects a custom slog logger.
func WithLogger(logger *slog.Logger) ResponderOption {
	return func(r *Responder) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithErrorClassifier installs the classifier consulted by HandleErrors.
func WithErrorClassifier(classifier ErrorClassifierFunc) ResponderOption {
	return func(r *Responder) {
		r.classifier = classifier
	}
}

// WithTraceIDFunc replaces the ULID generator used for problem trace ids.
func WithTraceIDFunc(fn TraceIDFunc) ResponderOption {
	return func(r *Responder) {
		if fn != nil {
			r.traceID = fn
		}
	}
}

// WithStatusMetadata overrides how problems with the given status are titled,
// typed and logged.
func WithStatusMetadata(status int, meta StatusMetadata) ResponderOption {
	return func(r *Responder) {
		if r.statuses == nil {
			r.statuses = make(map[int]StatusMetadata)
		}
		r.statuses[status] = meta.withDefaults(status)
	}
}

func (r *Responder) logger() *slog.Logger {
	if r == nil || r.log == nil {
		return slog.Default()
	}
	return r.log
}

func (r *Responder) newTraceID() string {
	if r == nil || r.traceID == nil {
		return newTraceID()
	}
	return r.traceID()
}

func (r *Responder) classify(err error) (int, bool) {
	if r.classifier == nil {
		return 0, false
	}
	return r.classifier(err)
}

func (r *Responder) statusFor(status int) StatusMetadata {
	return r.statuses[status].withDefaults(status)
}

func defaultStatuses() map[int]StatusMetadata {
	return map[int]StatusMetadata{
		http.StatusInternalServerError:  {LogLevel: slog.LevelError, LogMsg: "Internal Server Error"},
		http.StatusBadRequest:           {LogLevel: slog.LevelWarn, LogMsg: "Bad Request"},
		http.StatusUnauthorized:         {LogLevel: slog.LevelWarn, LogMsg: "Unauthorized"},
		http.StatusUnsupportedMediaType: {LogLevel: slog.LevelWarn, LogMsg: "Unsupported submission media type"},
	}
}
