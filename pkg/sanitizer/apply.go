package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		value = fn(value)
	}
	return value
}

// Compose bundles transforms into one reusable function.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T { return Apply(value, transforms...) }
}
