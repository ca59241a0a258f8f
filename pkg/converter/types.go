// Package converter turns Cubase drum map files into piano-roll note name text
package converter

// Converter handles drum map to note-name conversions
type Converter struct {
	grouped bool
}

// New creates a new Converter. With grouped=true the output order is
// inferred from bracketed instrument family tags instead of replaying
// the map's explicit Order list.
func New(grouped bool) *Converter {
	return &Converter{grouped: grouped}
}

// Grouped reports whether inferred grouping is enabled
func (c *Converter) Grouped() bool {
	return c.grouped
}
