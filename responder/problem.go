package responder

import (
	"net/http"
	"time"

	"github.com/drblury/halweaver/hal"
	"github.com/drblury/halweaver/header"
	"github.com/drblury/halweaver/vocab"
)

// ProblemDetails is the RFC 9457 body of an error response. It travels as
// the payload of a HAL document whose "help" link points at the problem type
// and whose "self" link names the failed request, and is served as
// application/problem+json.
type ProblemDetails struct {
	Type      string `json:"type,omitempty"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail,omitempty"`
	Instance  string `json:"instance,omitempty"`
	TraceID   string `json:"traceId,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

func (r *Responder) newProblem(req *http.Request, status int, err error, meta StatusMetadata) ProblemDetails {
	return ProblemDetails{
		Type:      meta.TypeURI,
		Title:     meta.Title,
		Status:    status,
		Detail:    err.Error(),
		Instance:  requestInstance(req),
		TraceID:   r.newTraceID(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// problemResponse wraps p in a HAL document. Problems describe one request
// and must not be cached.
func problemResponse(p ProblemDetails) (Response, error) {
	doc, err := hal.New(p)
	if err != nil {
		return Response{}, err
	}
	doc = doc.WithLink(vocab.RelHelp, hal.NewLink(p.Type).WithTitle(p.Title))
	if p.Instance != "" {
		doc = doc.WithLinkHref(vocab.RelSelf, p.Instance)
	}
	return FromDocument(doc).
		WithStatusCode(p.Status).
		WithHeader(header.NewCacheControl().WithNoStore()), nil
}

func (r *Responder) logProblem(req *http.Request, meta StatusMetadata, p ProblemDetails, err error, msgs []string) {
	attrs := []any{"error", err.Error(), "traceId", p.TraceID, "status", p.Status}
	if p.Instance != "" {
		attrs = append(attrs, "instance", p.Instance)
	}
	if len(msgs) > 0 {
		attrs = append(attrs, "logMessages", msgs)
	}
	r.logger().Log(requestContext(req), meta.LogLevel.Level(), meta.LogMsg, attrs...)
}
