// Package drummap parses Cubase drum map (.drm) files and resolves the
// order in which the mapped notes should be listed.
package drummap

// NoteEntry pairs a MIDI note identifier with an instrument display name
type NoteEntry struct {
	Note string // note identifier, kept verbatim from the source
	Name string // display name, may carry a bracketed family tag
}

// DrumMap holds everything extracted from a single .drm file
type DrumMap struct {
	Name    string      // map display name, empty when the source has none
	Entries []NoteEntry // valid note/name pairs in document order
	Order   []string    // explicit note order, empty when the map has none
}
