package responder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/drblury/halweaver/jsonutil"
	"github.com/drblury/halweaver/vocab"
)

// ReadRequestBody decodes a JSON request body, typically the submission of a
// HAL-FORMS template, into v. Bodies declared with a non-JSON Content-Type are
// rejected with 415 and malformed bodies with 400. It reports whether v was
// filled; on false a problem document has already been written.
func (r *Responder) ReadRequestBody(w http.ResponseWriter, req *http.Request, v any) bool {
	if err := checkSubmissionType(req); err != nil {
		r.HandleAPIError(w, req, http.StatusUnsupportedMediaType, err)
		return false
	}
	if err := r.decodeRequestBody(req, v); err != nil {
		r.HandleBadRequestError(w, req, err, "failed to parse request body")
		return false
	}
	return true
}

func (r *Responder) decodeRequestBody(req *http.Request, v any) error {
	if req == nil || req.Body == nil {
		return errors.New("request body is required")
	}
	if err := jsonutil.Decode(req.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// checkSubmissionType accepts a missing Content-Type, application/json and
// any +json structured suffix.
func checkSubmissionType(req *http.Request) error {
	if req == nil {
		return nil
	}
	raw := req.Header.Get("Content-Type")
	if raw == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return fmt.Errorf("invalid content type %q: %w", raw, err)
	}
	if mediaType == vocab.ContentTypeJSON || strings.HasSuffix(mediaType, "+json") {
		return nil
	}
	return fmt.Errorf("content type %q is not supported, submit %s", mediaType, vocab.ContentTypeJSON)
}

func requestInstance(req *http.Request) string {
	if req == nil || req.URL == nil {
		return ""
	}
	return req.URL.RequestURI()
}

func requestContext(req *http.Request) context.Context {
	if req == nil {
		return context.Background()
	}
	return req.Context()
}
