package meter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	textSep        = ":"
	textTerminator = ";"
)

// TextCodec encode meters as `name:value;` segments without any separator, Test1:1;Test2:1;
// The names must not contain ':' or ';'.
type TextCodec struct{}

// Name implements Codec.Name
func (TextCodec) Name() string {
	return FormatText
}

// Encode implements Codec.Encode
func (TextCodec) Encode(entries []Entry) (string, error) {
	var b strings.Builder
	for _, e := range entries {
		if e.Name == "" || strings.ContainsAny(e.Name, textSep+textTerminator) {
			return "", invalidArgf("meter name %q can't be encoded as text", e.Name)
		}
		b.WriteString(e.Name)
		b.WriteString(textSep)
		b.WriteString(strconv.FormatInt(e.Value, 10))
		b.WriteString(textTerminator)
	}
	return b.String(), nil
}

// Decode implements Codec.Decode
func (TextCodec) Decode(content string) ([]Entry, error) {
	if content == "" {
		return nil, nil
	}
	if !strings.HasSuffix(content, textTerminator) {
		return nil, errors.New("snapshot is not terminated by " + textTerminator)
	}

	var entries []Entry
	index := map[string]int{}
	for i, seg := range strings.Split(strings.TrimSuffix(content, textTerminator), textTerminator) {
		name, value, found := strings.Cut(seg, textSep)
		if !found || name == "" {
			return nil, fmt.Errorf("segment %d %q has no name", i, seg)
		}
		if strings.Contains(value, textSep) {
			return nil, fmt.Errorf("segment %d %q has more than one %s", i, seg, textSep)
		}
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("segment %d %q has invalid value,err:%w", i, seg, err)
		}
		entries = appendEntry(entries, index, name, v)
	}
	return entries, nil
}
