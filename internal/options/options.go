// Package options implements functional options over a config pointer.
package options

// Option mutates a target, usually a *Config, and may reject the result.
type Option[T any] interface {
	apply(T) error
}

// Func is the Option built by New, NoError and Checked.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New returns an option running fn against the target.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError returns an option for a setter that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return New(func(target T) error {
		fn(target)
		return nil
	})
}

// Checked returns an option that stores value with set once check accepts it.
// The target is left untouched when check fails.
func Checked[T, V any](value V, check func(V) error, set func(T, V)) *Func[T] {
	return New(func(target T) error {
		if err := check(value); err != nil {
			return err
		}
		set(target, value)

		return nil
	})
}

// Apply runs opts against target in order, skipping nil entries, and returns
// the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
