package aggregate

// config selects which dispatch stages Aggregate may use.
type config struct {
	shortcut    bool
	specialize  bool
	reassociate bool
}

// Option mutates the dispatch configuration of one call.
type Option func(*config)

func defaultConfig() config {
	return config{
		shortcut:   true,
		specialize: true,
	}
}

// WithoutShortcut skips the native bulk-reduction stage.
func WithoutShortcut() Option {
	return func(cfg *config) {
		cfg.shortcut = false
	}
}

// WithoutSpecialization skips the specialized row kernels.
func WithoutSpecialization() Option {
	return func(cfg *config) {
		cfg.specialize = false
	}
}

// ForceGeneric disables both fast stages, so every element goes through
// the operator's Op method.
func ForceGeneric() Option {
	return func(cfg *config) {
		cfg.shortcut = false
		cfg.specialize = false
	}
}

// WithReassociation allows native kernels that regroup floating-point
// operations. Results may then differ from the left fold in the last bits.
func WithReassociation() Option {
	return func(cfg *config) {
		cfg.reassociate = true
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
