package verifier

// Option configures Build and Verify.
type Option func(*options)

type options struct {
	maxPairStates int
}

// WithMaxPairStates bounds the number of twin-plant states; 0 means no bound.
// Panics if n < 0.
func WithMaxPairStates(n int) Option {
	if n < 0 {
		panic("verifier: WithMaxPairStates(n<0)")
	}

	return func(o *options) { o.maxPairStates = n }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
