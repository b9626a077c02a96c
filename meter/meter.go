// Package meter supply an in-process registry of named counters ("meters") which can be
// persisted to a flat snapshot and merged with the snapshot already stored there.
package meter

// Entry is a named counter value
type Entry struct {
	Name  string
	Value int64
}

// PersistMode define how Persist treats the snapshot already stored at the path
type PersistMode int

const (
	// PersistMerge adds the stored snapshot into memory before writing
	PersistMerge PersistMode = iota
	// PersistOverwrite writes memory as-is and ignores the stored snapshot
	PersistOverwrite
)

var persistModeNames = map[PersistMode]string{
	PersistMerge:     "merge",
	PersistOverwrite: "overwrite",
}

func (p PersistMode) String() string {
	return persistModeNames[p]
}

// ParsePersistMode parse the mode name, empty name means PersistMerge
func ParsePersistMode(name string) (PersistMode, error) {
	if name == "" {
		return PersistMerge, nil
	}
	for mode, n := range persistModeNames {
		if n == name {
			return mode, nil
		}
	}
	return PersistMerge, invalidArgf("unknown persist mode %q", name)
}
