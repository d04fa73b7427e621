package hal

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/drblury/halweaver/jsonutil"
)

// payload is the JSON form of the caller's value. Objects are kept as
// ordered members so they can be merged next to the reserved keys, anything
// else that is not null is kept whole in bare.
type payload struct {
	members []member
	bare    []byte
}

type member struct {
	key string
	raw []byte
}

func convertPayload(value any) (payload, error) {
	data, err := jsonutil.Marshal(value)
	if err != nil {
		return payload{}, &PayloadConversionError{Err: err}
	}

	p, err := splitPayload(data)
	if err != nil {
		return payload{}, &PayloadConversionError{Err: err}
	}
	return p, nil
}

// splitPayload also repairs invalid UTF-8. Outside of strings JSON text is
// ASCII, so a byte-wise replacement cannot change the structure.
func splitPayload(data []byte) (payload, error) {
	iter := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(iter)

	var p payload
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.Skip()
	case jsoniter.ObjectValue:
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			p.members = append(p.members, member{
				key: key,
				raw: []byte(validUTF8(string(it.SkipAndReturnBytes()))),
			})
			return it.Error == nil
		})
	default:
		p.bare = []byte(validUTF8(string(data)))
	}

	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return payload{}, iter.Error
	}
	return p, nil
}
