package responder

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drblury/halweaver/hal"
	"github.com/drblury/halweaver/header"
	"github.com/drblury/halweaver/jsonutil"
)

type failingPayload struct{}

func (failingPayload) MarshalJSON() ([]byte, error) {
	return nil, errors.New("cannot encode")
}

func newTestResponder(buf *bytes.Buffer, opts ...ResponderOption) *Responder {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts = append([]ResponderOption{WithLogger(logger), WithTraceIDFunc(func() string { return "trace-1" })}, opts...)
	return NewResponder(opts...)
}

func serve(r *Responder, resp Response) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.RespondWithHAL(rec, req, resp)
	return rec
}

func TestRespondWithHALNoValues(t *testing.T) {
	var logs bytes.Buffer
	resp, err := NewResponse(nil)
	require.NoError(t, err)

	rec := serve(newTestResponder(&logs), resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, hal.MediaTypeJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, "{}", strings.TrimSpace(rec.Body.String()))
}

func TestRespondWithHALExample(t *testing.T) {
	var logs bytes.Buffer
	resp, err := NewResponse(map[string]int{"currentlyProcessing": 14, "shippedToday": 20})
	require.NoError(t, err)
	resp = resp.
		WithLinkHref("self", "/orders").
		WithLinkHref("next", "/orders?page=2").
		WithLink("find", hal.NewLink("/orders{?id}").WithTemplated()).
		WithEmbedded("orders", hal.MustNew(map[string]string{"status": "shipped"}).WithLinkHref("self", "/orders/123")).
		WithEmbedded("orders", hal.MustNew(map[string]string{"status": "processing"}).WithLinkHref("self", "/orders/124"))

	rec := serve(newTestResponder(&logs), resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, hal.MediaTypeHAL, rec.Header().Get("Content-Type"))

	var body struct {
		Links    map[string]map[string]any `json:"_links"`
		Embedded map[string][]struct {
			Status string `json:"status"`
		} `json:"_embedded"`
		CurrentlyProcessing int `json:"currentlyProcessing"`
	}
	require.NoError(t, jsonutil.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/orders", body.Links["self"]["href"])
	assert.Equal(t, true, body.Links["find"]["templated"])
	require.Len(t, body.Embedded["orders"], 2)
	assert.Equal(t, "processing", body.Embedded["orders"][1].Status)
	assert.Equal(t, 14, body.CurrentlyProcessing)
	assert.Contains(t, logs.String(), "contentType=application/hal+json")
}

func TestRespondWithHALTemplate(t *testing.T) {
	var logs bytes.Buffer
	resp := FromDocument(hal.MustNew(nil)).WithTemplate("default", hal.Template{})

	rec := serve(newTestResponder(&logs), resp)

	assert.Equal(t, hal.MediaTypeHALForms, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"_templates":{"default":{}}}`, strings.TrimSpace(rec.Body.String()))
}

func TestRespondWithHALNestedTemplate(t *testing.T) {
	var logs bytes.Buffer
	resp := FromDocument(hal.MustNew(nil)).
		WithEmbedded("other", hal.MustNew(nil).WithTemplate("default", hal.Template{}))

	rec := serve(newTestResponder(&logs), resp)

	assert.Equal(t, hal.MediaTypeHALForms, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"_embedded":{"other":{"_templates":{"default":{}}}}}`, strings.TrimSpace(rec.Body.String()))
}

func TestRespondWithHALStatusCode(t *testing.T) {
	var logs bytes.Buffer
	resp := FromDocument(hal.MustNew(nil)).WithStatusCode(http.StatusAccepted)

	rec := serve(newTestResponder(&logs), resp)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, hal.MediaTypeJSON, rec.Header().Get("Content-Type"))
}

func TestRespondWithHALHeadersAndContentTypeOverride(t *testing.T) {
	var logs bytes.Buffer
	resp := FromDocument(hal.MustNew(nil)).
		WithHeader(header.NewCacheControl().WithPublic().WithMaxAge(time.Hour)).
		WithHeader(header.ETag("Hello")).
		WithHeader(header.ContentType("application/xml"))

	rec := serve(newTestResponder(&logs), resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, hal.MediaTypeJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{hal.MediaTypeJSON}, rec.Header().Values("Content-Type"))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
	assert.Equal(t, `"Hello"`, rec.Header().Get("ETag"))
}

func TestRespondWithDocument(t *testing.T) {
	var logs bytes.Buffer
	r := newTestResponder(&logs)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	r.RespondWithDocument(rec, req, http.StatusCreated, hal.MustNew(nil).WithLinkHref("self", "/orders/1"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, hal.MediaTypeHAL, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"_links":{"self":{"href":"/orders/1"}}}`, strings.TrimSpace(rec.Body.String()))
}

func TestRespondWithHALNilWriter(t *testing.T) {
	var logs bytes.Buffer
	assert.NotPanics(t, func() {
		newTestResponder(&logs).RespondWithHAL(nil, nil, Response{})
	})
}

func TestHandleErrorsPayloadConversion(t *testing.T) {
	var logs bytes.Buffer
	r := newTestResponder(&logs)

	_, err := hal.New(failingPayload{})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
	r.HandleErrors(rec, req, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, problemContentType, rec.Header().Get("Content-Type"))

	var problem ProblemDetails
	require.NoError(t, jsonutil.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, http.StatusInternalServerError, problem.Status)
	assert.Equal(t, "trace-1", problem.TraceID)
	assert.Equal(t, "/orders/1", problem.Instance)
	assert.Contains(t, problem.Detail, "payload conversion failed")
	assert.Contains(t, logs.String(), "document payload could not be converted")
}

func TestHandleAPIErrorRendersHALProblem(t *testing.T) {
	var logs bytes.Buffer
	r := newTestResponder(&logs)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/orders/7?force=true", nil)
	r.HandleBadRequestError(rec, req, errors.New("order is shipped"), "cannot delete")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, problemContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body struct {
		Links struct {
			Help struct {
				Href  string `json:"href"`
				Title string `json:"title"`
			} `json:"help"`
			Self struct {
				Href string `json:"href"`
			} `json:"self"`
		} `json:"_links"`
		ProblemDetails
	}
	require.NoError(t, jsonutil.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://httpstatuses.io/400", body.Links.Help.Href)
	assert.Equal(t, "Bad Request", body.Links.Help.Title)
	assert.Equal(t, "/orders/7?force=true", body.Links.Self.Href)
	assert.Equal(t, "order is shipped", body.Detail)
	assert.Equal(t, "trace-1", body.TraceID)
	assert.True(t, strings.HasPrefix(rec.Body.String(), `{"_links":{`))

	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "instance=\"/orders/7?force=true\"")
	assert.Contains(t, logs.String(), "cannot delete")
}

func TestHandleAPIErrorWithoutRequestOmitsSelf(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()

	newTestResponder(&logs).HandleInternalServerError(rec, nil, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"self"`)
	assert.Contains(t, rec.Body.String(), `"help":{"href":"https://httpstatuses.io/500","title":"Internal Server Error"}`)
}

func TestHandleErrorsUsesClassifier(t *testing.T) {
	var logs bytes.Buffer
	errMissing := errors.New("order not found")
	r := newTestResponder(&logs, WithErrorClassifier(func(err error) (int, bool) {
		if errors.Is(err, errMissing) {
			return http.StatusNotFound, true
		}
		return 0, false
	}))

	rec := httptest.NewRecorder()
	r.HandleErrors(rec, httptest.NewRequest(http.MethodGet, "/orders/9", nil), errMissing)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var problem ProblemDetails
	require.NoError(t, jsonutil.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Not Found", problem.Title)
	assert.Equal(t, "https://httpstatuses.io/404", problem.Type)
}

func TestHandleErrorsIgnoresNil(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()

	newTestResponder(&logs).HandleErrors(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)

	assert.Equal(t, 0, rec.Body.Len())
}

func TestWithStatusMetadataOverrides(t *testing.T) {
	var logs bytes.Buffer
	r := newTestResponder(&logs, WithStatusMetadata(http.StatusConflict, StatusMetadata{
		Title:    "Order already exists",
		LogLevel: slog.LevelInfo,
		TypeURI:  "https://errors.example.com/conflict",
	}))

	rec := httptest.NewRecorder()
	r.HandleAPIError(rec, httptest.NewRequest(http.MethodPost, "/orders", nil), http.StatusConflict, errors.New("duplicate"))

	var problem ProblemDetails
	require.NoError(t, jsonutil.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Order already exists", problem.Title)
	assert.Equal(t, "https://errors.example.com/conflict", problem.Type)
	assert.Contains(t, logs.String(), "level=INFO")
	assert.Contains(t, logs.String(), "msg=\"Order already exists\"")
}
