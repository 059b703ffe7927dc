package storage

// Option customizes bucket accessor behavior.
type Option func(*settings)

type settings struct {
	api ObjectStore
}

func applyOptions(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithAPI substitutes the storage client used by an accessor. Used by
// tests to avoid network setup.
func WithAPI(api ObjectStore) Option {
	return func(s *settings) {
		s.api = api
	}
}
