// Package halweaver builds hypermedia API responses in the HAL
// (application/hal+json) and HAL-FORMS (application/prs.hal-forms+json)
// media types, falling back to plain JSON when a document carries no
// hypermedia.
//
// # Packages
//
//   - hal: the document model. Links, embedded documents and templates are
//     collected through chained, copy-on-write builders and rendered with the
//     payload fields merged next to "_links", "_embedded" and "_templates".
//     ResolveContentType picks the media type from the document's contents.
//   - responder: pairs a document with a status code and headers, writes it
//     to an http.ResponseWriter with the resolved content type, and renders
//     failures as RFC 9457 problem documents with structured logging.
//   - header: typed headers (Cache-Control, ETag, Location, ...) appended to
//     a responder.Response.
//   - vocab: constants for methods, submission content types, property input
//     types and IANA link relations.
//   - jsonutil: thin sonic wrappers shared by the packages above.
//
// # Quick Start
//
//	r := responder.NewResponder(responder.WithLogger(logger))
//
//	func getOrder(w http.ResponseWriter, req *http.Request) {
//	    resp, err := responder.NewResponse(order)
//	    if err != nil {
//	        r.HandleErrors(w, req, err)
//	        return
//	    }
//	    r.RespondWithHAL(w, req, resp.
//	        WithLinkHref(vocab.RelSelf, "/orders/123").
//	        WithTemplate("cancel", hal.Template{}.WithMethod(vocab.MethodDelete)).
//	        WithHeader(header.ETag(order.Version)))
//	}
//
// The response above is served as application/prs.hal-forms+json because it
// carries a template; the Content-Type is always derived from the document.
package halweaver
