package utils

// OptionExtender is the extension point accepted by every function in this
// module that takes optional configuration. Options for different target
// types can be mixed in one call list; an option silently ignores targets it
// does not apply to.
type OptionExtender interface {
	applyOption(t any)
}

// OptionFunc adapts a plain function to an OptionExtender for target type T.
type OptionFunc[T any] func(*T)

func (o OptionFunc[T]) applyOption(a any) {
	if t, ok := a.(*T); ok {
		o(t)
	}
}

// ApplyOptions constructs a zero T and applies every non-nil option to it.
func ApplyOptions[T any](opts ...OptionExtender) (t *T) {
	t = new(T)
	for _, optional := range opts {
		if optional != nil {
			optional.applyOption(t)
		}
	}
	return
}
