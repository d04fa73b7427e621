// Package hal builds documents in the HAL (application/hal+json) and
// HAL-FORMS (application/prs.hal-forms+json) media types.
//
// A Document wraps any JSON-encodable payload and collects links, embedded
// documents and templates through chained With calls:
//
//	doc := hal.MustNew(map[string]int{"currentlyProcessing": 14}).
//	    WithLinkHref("self", "/orders").
//	    WithLink("find", hal.NewLink("/orders{?id}").WithTemplated()).
//	    WithEmbedded("orders", hal.MustNew(order).WithLinkHref("self", "/orders/123")).
//	    WithTemplate("default", hal.Template{}.WithMethod("POST"))
//
// Marshalling a Document merges the payload fields with the reserved
// "_links", "_embedded" and "_templates" members. A relation holding one link
// or embedded document renders as an object; adding a second one under the
// same relation turns it into an array. Unset optional fields are left out of
// the output entirely.
//
// ResolveContentType derives the media type a document should be served as:
// HAL-FORMS when a template appears anywhere in the embedded tree, HAL when
// the document has links or embedded documents, and plain JSON otherwise.
package hal
