package meter

// Option configures a Store
type Option func(*Store)

// WithCodec set the wire format of snapshots, nil is ignored
func WithCodec(codec Codec) Option {
	return func(s *Store) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// WithPersistMode set how Persist treats the stored snapshot
func WithPersistMode(mode PersistMode) Option {
	return func(s *Store) {
		s.mode = mode
	}
}
