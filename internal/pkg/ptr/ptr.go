package ptr

// To returns a pointer to v. Mostly useful for literals in tests and for
// filling optional DTO fields.
func To[T any](v T) *T {
	return &v
}
