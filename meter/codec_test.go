package meter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec(t *testing.T) {
	codec := JSONCodec{}
	s, err := codec.Encode(nil)
	assert.Nil(t, err)
	assert.Equal(t, "{}", s)

	s, err = codec.Encode([]Entry{{"z", 1}, {"a", -2}, {`quo"te`, 3}})
	assert.Nil(t, err)
	assert.Equal(t, `{"z":1,"a":-2,"quo\"te":3}`, s)

	entries, err := codec.Decode(s)
	assert.Nil(t, err)
	assert.Equal(t, []Entry{{"z", 1}, {"a", -2}, {`quo"te`, 3}}, entries)

	entries, err = codec.Decode(" { \"a\" : 1 , \"b\":2, \"a\":3 }\n")
	assert.Nil(t, err)
	assert.Equal(t, []Entry{{"a", 4}, {"b", 2}}, entries)

	entries, err = codec.Decode("{\"a\":1}\r\n\t ")
	assert.Nil(t, err)
	assert.Equal(t, []Entry{{"a", 1}}, entries)

	entries, err = codec.Decode("{}")
	assert.Nil(t, err)
	assert.Equal(t, 0, len(entries))

	for _, bad := range []string{
		"",
		"[1,2]",
		`{"a":1.5}`,
		`{"a":"1"}`,
		`{"a":{"b":1}}`,
		`{"a":1`,
		`{"a":1} {"b":2}`,
		`{"a":1}x`,
		`{"a":1}}`,
		`{"a":1}]`,
		"{\"a\":1}\x00",
		"{\"a\":1} \n ,",
		`{"a":99999999999999999999}`,
	} {
		_, err = codec.Decode(bad)
		assert.NotNil(t, err, bad)
	}
}

func TestTextCodec(t *testing.T) {
	codec := TextCodec{}
	s, err := codec.Encode([]Entry{{"Test1", 1}, {"Test2", -10}})
	assert.Nil(t, err)
	assert.Equal(t, "Test1:1;Test2:-10;", s)

	entries, err := codec.Decode(s)
	assert.Nil(t, err)
	assert.Equal(t, []Entry{{"Test1", 1}, {"Test2", -10}}, entries)

	entries, err = codec.Decode("")
	assert.Nil(t, err)
	assert.Equal(t, 0, len(entries))

	entries, err = codec.Decode("a:1;a:2;")
	assert.Nil(t, err)
	assert.Equal(t, []Entry{{"a", 3}}, entries)

	for _, bad := range []Entry{{"a;b", 1}, {"a:b", 1}, {"", 1}} {
		_, err = codec.Encode([]Entry{bad})
		assert.True(t, errors.Is(err, ErrInvalidArgument), bad.Name)
	}

	for _, bad := range []string{"a:1", "a1;", ":1;", "a:x;", "a:1;;", "a:1;b:;", "a:b:1;", "a:1:;"} {
		_, err = codec.Decode(bad)
		assert.NotNil(t, err, bad)
	}
	_, err = codec.Decode("a:b:1;")
	assert.Contains(t, err.Error(), "more than one :")
}

func TestMsgpackCodec(t *testing.T) {
	codec := MsgpackCodec{}
	src := []Entry{{"b", 2}, {"a", -1}}
	s, err := codec.Encode(src)
	require.Nil(t, err)

	entries, err := codec.Decode(s)
	assert.Nil(t, err)
	assert.Equal(t, src, entries)

	_, err = codec.Decode("")
	assert.NotNil(t, err)
	_, err = codec.Decode("\xc1")
	assert.NotNil(t, err)
	_, err = codec.Decode(s + "\x00")
	assert.NotNil(t, err)
}

func TestCodecByName(t *testing.T) {
	for name, expected := range map[string]string{"": FormatJSON, "json": FormatJSON, "text": FormatText, "msgpack": FormatMsgpack} {
		codec, err := CodecByName(name)
		assert.Nil(t, err)
		assert.Equal(t, expected, codec.Name())
	}
	_, err := CodecByName("xml")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
