package converter

import (
	"fmt"
	"strings"

	"github.com/james-see/drummap2notes/pkg/drummap"
)

// noteLineMarker prefixes each line of the grouped order block
const noteLineMarker = "NO"

// renderNoteNames builds the text payload: a header line, the flat
// note/name list in extraction order, then the grouped order block in
// resolver order. The first grouped line renders at the bottom of the
// piano roll in the consuming application.
func renderNoteNames(m *drummap.DrumMap, order []string) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", m.Name)
	for _, e := range m.Entries {
		fmt.Fprintf(&b, "%s %s\n", e.Note, e.Name)
	}

	b.WriteString("# Grouped order\n")
	for _, note := range order {
		fmt.Fprintf(&b, "%s %s\n", noteLineMarker, note)
	}

	return []byte(b.String())
}
