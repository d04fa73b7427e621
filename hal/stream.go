package hal

import (
	"maps"
	"reflect"
	"slices"
	"strings"
	"unicode/utf8"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// jsonAPI writes the document tree. HTML escaping is off so hrefs render as
// given, map keys are sorted so output is stable. Strings are written through
// utf8Extension because the unescaped writer copies invalid bytes verbatim.
var jsonAPI = newJSONAPI()

func newJSONAPI() jsoniter.API {
	api := jsoniter.Config{
		EscapeHTML:             false,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	api.RegisterExtension(&utf8Extension{})
	return api
}

var stringType = reflect.TypeFor[string]()

type utf8Extension struct {
	jsoniter.DummyExtension
}

func (utf8Extension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Type1() == stringType {
		return utf8StringEncoder{}
	}
	return nil
}

type utf8StringEncoder struct{}

func (utf8StringEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*string)(ptr) == ""
}

func (utf8StringEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString(validUTF8(*(*string)(ptr)))
}

// validUTF8 replaces every byte that is not part of a valid UTF-8 sequence
// with U+FFFD, one replacement per byte.
func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*utf8.UTFMax)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

type writeFunc[T any] func(stream *jsoniter.Stream, value T)

func writeValue[T any](stream *jsoniter.Stream, value T) {
	stream.WriteVal(value)
}

func writeRelation[T any](stream *jsoniter.Stream, r Relation[T], write writeFunc[T]) {
	if len(r.items) == 1 {
		write(stream, r.items[0])
		return
	}

	stream.WriteArrayStart()
	for i, item := range r.items {
		if i > 0 {
			stream.WriteMore()
		}
		write(stream, item)
	}
	stream.WriteArrayEnd()
}

func writeSorted[V any](stream *jsoniter.Stream, m map[string]V, write writeFunc[V]) {
	stream.WriteObjectStart()
	for i, key := range slices.Sorted(maps.Keys(m)) {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(validUTF8(key))
		write(stream, m[key])
	}
	stream.WriteObjectEnd()
}

func streamBytes(stream *jsoniter.Stream) ([]byte, error) {
	if stream.Error != nil {
		return nil, stream.Error
	}
	return slices.Clone(stream.Buffer()), nil
}
