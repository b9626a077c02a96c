package meter

import (
	"errors"

	c "github.com/d0ngw/census/common"
)

var errNoFileSystem = errors.New("no file system")

// Store keeps meters in memory in first-insertion order.
// It's not safe for concurrent use, see SyncStore.
type Store struct {
	fs     FileSystem
	codec  Codec
	mode   PersistMode
	values *c.LinkedMap[string, int64]
}

// NewStore create an empty Store which persists snapshots with fs.
// The default codec is JSONCodec and the default mode is PersistMerge.
func NewStore(fs FileSystem, opts ...Option) *Store {
	s := &Store{
		fs:     fs,
		codec:  JSONCodec{},
		mode:   PersistMerge,
		values: c.NewLinkedMap[string, int64](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Codec return the codec of snapshots
func (p *Store) Codec() Codec {
	return p.codec
}

// Mode return the persist mode
func (p *Store) Mode() PersistMode {
	return p.mode
}

// Increment add amount to the meter of name, the meter is created with amount if it doesn't exist.
// It returns the new value.
func (p *Store) Increment(name string, amount int64) (int64, error) {
	if name == "" {
		return 0, invalidArgf("meter name must not be empty")
	}
	v, _ := p.values.Get(name)
	v += amount
	p.values.Put(name, v)
	return v, nil
}

// Incr add 1 to the meter of name
func (p *Store) Incr(name string) (int64, error) {
	return p.Increment(name, 1)
}

// Read return the value of the meter, ok is false if the meter doesn't exist
func (p *Store) Read(name string) (value int64, ok bool, err error) {
	if name == "" {
		return 0, false, invalidArgf("meter name must not be empty")
	}
	value, ok = p.values.Get(name)
	return
}

// Len return the number of meters
func (p *Store) Len() int {
	return p.values.Len()
}

// Entries return the meters in order
func (p *Store) Entries() []Entry {
	return entriesOf(p.values)
}

// Clear remove all meters
func (p *Store) Clear() {
	p.values.Clear()
}

// Load merge the snapshot at path into memory, it's a no-op if there is no snapshot.
// Memory is unchanged if the snapshot can't be read or decoded.
func (p *Store) Load(path string) error {
	if p.fs == nil {
		return ioError(OpRead, path, errNoFileSystem)
	}
	stored, err := p.readSnapshot(path)
	if err != nil {
		return err
	}
	mergeEntries(p.values, stored)
	c.Debugf("load %d meters from %s", len(stored), path)
	return nil
}

// Persist write memory to the snapshot at path. In PersistMerge mode the stored snapshot is
// added into memory first. Memory is cleared after a successful write if clearAfter is true,
// otherwise it keeps the written values. Memory is unchanged if any step fails.
func (p *Store) Persist(path string, clearAfter bool) error {
	if p.fs == nil {
		return ioError(OpWrite, path, errNoFileSystem)
	}
	merged := p.values
	if p.mode == PersistMerge {
		stored, err := p.readSnapshot(path)
		if err != nil {
			return err
		}
		if len(stored) > 0 {
			merged = p.values.Clone()
			mergeEntries(merged, stored)
		}
	}

	content, err := p.codec.Encode(entriesOf(merged))
	if err != nil {
		return err
	}
	if err = p.fs.WriteAllText(path, content); err != nil {
		return ioError(OpWrite, path, err)
	}
	c.Debugf("persist %d meters to %s,mode:%s,clear:%t", merged.Len(), path, p.mode, clearAfter)

	if clearAfter {
		p.values = c.NewLinkedMap[string, int64]()
	} else {
		p.values = merged
	}
	return nil
}

func (p *Store) readSnapshot(path string) ([]Entry, error) {
	exist, err := p.fs.Exists(path)
	if err != nil {
		return nil, ioError(OpExists, path, err)
	}
	if !exist {
		return nil, nil
	}
	content, err := p.fs.ReadAllText(path)
	if err != nil {
		return nil, ioError(OpRead, path, err)
	}
	entries, err := p.codec.Decode(content)
	if err != nil {
		return nil, &ParseError{Path: path, Format: p.codec.Name(), Err: err}
	}
	return entries, nil
}

func mergeEntries(values *c.LinkedMap[string, int64], entries []Entry) {
	for _, e := range entries {
		v, _ := values.Get(e.Name)
		values.Put(e.Name, v+e.Value)
	}
}

func entriesOf(values *c.LinkedMap[string, int64]) []Entry {
	entries := make([]Entry, 0, values.Len())
	values.Range(func(name string, value int64) bool {
		entries = append(entries, Entry{Name: name, Value: value})
		return true
	})
	return entries
}
