package meter

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONCodec encode meters as a flat json object, {"name1":1,"name2":2}, the keys keep the order of entries.
// The values of duplicate keys are added when decoding.
type JSONCodec struct{}

// Name implements Codec.Name
func (JSONCodec) Name() string {
	return FormatJSON
}

// Encode implements Codec.Encode
func (JSONCodec) Encode(entries []Entry) (string, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, e := range entries {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(e.Name)
		stream.WriteInt64(e.Value)
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return "", stream.Error
	}
	return string(stream.Buffer()), nil
}

// Decode implements Codec.Decode
func (JSONCodec) Decode(content string) ([]Entry, error) {
	iter := jsoniter.ParseString(jsonAPI, content)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errors.New("snapshot is not a json object")
	}

	var entries []Entry
	index := map[string]int{}
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		if it.WhatIsNext() != jsoniter.NumberValue {
			it.ReportError("decode meter", fmt.Sprintf("value of %q is not a number", field))
			return false
		}
		num := it.ReadNumber()
		v, err := strconv.ParseInt(string(num), 10, 64)
		if err != nil {
			it.ReportError("decode meter", fmt.Sprintf("value of %q is not an integer: %s", field, num))
			return false
		}
		entries = appendEntry(entries, index, field, v)
		return true
	})
	if iter.Error != nil {
		return nil, iter.Error
	}
	// only whitespace may follow the object, the iterator reports io.EOF once the input is exhausted
	if next := iter.WhatIsNext(); next != jsoniter.InvalidValue || iter.Error != io.EOF {
		return nil, errors.New("unexpected content after json object")
	}
	return entries, nil
}
