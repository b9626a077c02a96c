package meter

import (
	"github.com/d0ngw/census/cache"
)

type msgpackEntry struct {
	_struct bool `codec:",toarray"`
	Name    string
	Value   int64
}

// MsgpackCodec encode meters as a msgpack array of [name, value] pairs
type MsgpackCodec struct{}

// Name implements Codec.Name
func (MsgpackCodec) Name() string {
	return FormatMsgpack
}

// Encode implements Codec.Encode
func (MsgpackCodec) Encode(entries []Entry) (string, error) {
	pairs := make([]msgpackEntry, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, msgpackEntry{Name: e.Name, Value: e.Value})
	}
	b, err := cache.MsgPackEncodeBytes(pairs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode implements Codec.Decode
func (MsgpackCodec) Decode(content string) ([]Entry, error) {
	var pairs []msgpackEntry
	if err := cache.MsgPackDecodeBytes([]byte(content), &pairs); err != nil {
		return nil, err
	}
	var entries []Entry
	index := map[string]int{}
	for _, p := range pairs {
		entries = appendEntry(entries, index, p.Name, p.Value)
	}
	return entries, nil
}
