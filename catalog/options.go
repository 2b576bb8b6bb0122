package catalog

// Options configures Open. The default store is read-write.
type Options struct {
	readOnly bool
}

// Option adjusts one store knob.
type Option func(*Options)

// WithReadOnly opens an existing catalog for reading only; Put and Delete
// fail. Ignored for in-memory catalogs.
func WithReadOnly() Option {
	return func(o *Options) { o.readOnly = true }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	return options
}
