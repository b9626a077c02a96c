package meter

// Codec encode and decode the snapshot of meters, a Store uses one Codec for both directions
type Codec interface {
	// Name of the wire format
	Name() string
	// Encode entries in order
	Encode(entries []Entry) (string, error)
	// Decode content to entries, keep the order in content
	Decode(content string) ([]Entry, error)
}

// Names of the codecs
const (
	FormatJSON    = "json"
	FormatText    = "text"
	FormatMsgpack = "msgpack"
)

// CodecByName return the codec of the format name, empty name means json
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", FormatJSON:
		return JSONCodec{}, nil
	case FormatText:
		return TextCodec{}, nil
	case FormatMsgpack:
		return MsgpackCodec{}, nil
	}
	return nil, invalidArgf("unknown snapshot format %q", name)
}

// appendEntry add value to the entry of name or append a new one
func appendEntry(entries []Entry, index map[string]int, name string, value int64) []Entry {
	if i, ok := index[name]; ok {
		entries[i].Value += value
		return entries
	}
	index[name] = len(entries)
	return append(entries, Entry{Name: name, Value: value})
}
