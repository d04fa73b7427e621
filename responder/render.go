package responder

import (
	"errors"
	"net/http"
	"slices"

	"github.com/drblury/halweaver/hal"
)

// RespondWithHAL writes resp: its headers are copied onto w, Content-Type is
// set to the media type resolved from the document (replacing any
// Content-Type the response carries) and the document is written as the body.
func (r *Responder) RespondWithHAL(w http.ResponseWriter, req *http.Request, resp Response) {
	contentType := resp.ContentType()
	r.logger().DebugContext(requestContext(req), "rendering hal document",
		"status", resp.StatusCode(), "contentType", contentType, "instance", requestInstance(req))
	r.render(w, req, resp, contentType)
}

// RespondWithDocument writes doc with the given status and no extra headers.
func (r *Responder) RespondWithDocument(w http.ResponseWriter, req *http.Request, status int, doc hal.Document) {
	r.RespondWithHAL(w, req, FromDocument(doc).WithStatusCode(status))
}

// HandleAPIError logs err and answers with a problem document for status.
func (r *Responder) HandleAPIError(w http.ResponseWriter, req *http.Request, status int, err error, logMsg ...string) {
	if err == nil {
		return
	}

	meta := r.statusFor(status)
	problem := r.newProblem(req, status, err, meta)
	r.logProblem(req, meta, problem, err, logMsg)

	resp, convErr := problemResponse(problem)
	if convErr != nil {
		r.logger().ErrorContext(requestContext(req), "failed to build problem document", "error", convErr)
		if w != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}
	r.render(w, req, resp, problemContentType)
}

// HandleInternalServerError reports err with status 500.
func (r *Responder) HandleInternalServerError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusInternalServerError, err, logMsg...)
}

// HandleBadRequestError reports err with status 400.
func (r *Responder) HandleBadRequestError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusBadRequest, err, logMsg...)
}

// HandleUnauthorizedError reports err with status 401.
func (r *Responder) HandleUnauthorizedError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusUnauthorized, err, logMsg...)
}

// HandleErrors answers with the status chosen by the configured classifier,
// or 500 when the error is not classified. Payload conversion failures are
// tagged in the log record.
func (r *Responder) HandleErrors(w http.ResponseWriter, req *http.Request, err error, msgs ...string) {
	if err == nil {
		return
	}

	if status, ok := r.classify(err); ok {
		r.HandleAPIError(w, req, status, err, msgs...)
		return
	}

	if errors.Is(err, hal.ErrPayloadConversion) {
		msgs = append(slices.Clip(msgs), "document payload could not be converted")
	}
	r.HandleInternalServerError(w, req, err, msgs...)
}

// render encodes the document before touching w so an encoding failure can
// still become a clean 500.
func (r *Responder) render(w http.ResponseWriter, req *http.Request, resp Response, contentType string) {
	if w == nil {
		return
	}

	body, err := resp.document.MarshalJSON()
	if err != nil {
		r.logger().ErrorContext(requestContext(req), "failed to encode hal document", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dst := w.Header()
	for name, values := range resp.header {
		for _, value := range values {
			dst.Add(name, value)
		}
	}
	dst.Set("Content-Type", contentType)

	w.WriteHeader(resp.StatusCode())
	if _, err := w.Write(append(body, '\n')); err != nil {
		r.logger().ErrorContext(requestContext(req), "failed to write response", "error", err)
	}
}
