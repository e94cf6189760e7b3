// Package cleaner provides interfaces and composable implementations for
// cleaning free-text abstract bodies.
// Cleaners are small text-to-text stages that can be chained.
package cleaner

// Cleaner transforms a body of text into a cleaner form.
type Cleaner interface {
	// Clean transforms the input text.
	// A cleaner that finds nothing to remove returns its input unchanged.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
