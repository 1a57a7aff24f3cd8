package splay

// Observer receives structural events from a Tree.
// Implementations are called synchronously from inside tree operations and
// must not call back into the tree.
type Observer interface {
	// Rotated is called after every single rotation.
	Rotated()
	// Splayed is called once a node has reached the root, with the number
	// of rotations the splay performed. A node that was already the root
	// reports zero.
	Splayed(rotations int)
}

// Option configures a Tree at construction.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver attaches an Observer to the tree.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
