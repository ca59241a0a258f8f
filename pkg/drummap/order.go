package drummap

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// displayOrder lists instrument family tokens as they should appear in
// the piano roll, top row first. The first output line ends up at the
// bottom of the roll, so the resolver works with the reversed table:
// a higher index means the family sits closer to the top.
var displayOrder = []string{
	"splash",
	"china",
	"crash 2",
	"crash 1",
	"ride",
	"bell",
	"hat",
	"tamb",
	"cowbell",
	"clap",
	"tom 1",
	"tom 2",
	"tom 3",
	"tom 4",
	"tom 5",
	"tom 6",
	"rim",
	"snare",
	"kick",
}

var preferenceTable = reversed(displayOrder)

func reversed(tokens []string) []string {
	res := make([]string, len(tokens))
	for i, t := range tokens {
		res[len(tokens)-1-i] = t
	}
	return res
}

var (
	digitRun = regexp.MustCompile(`[0-9]+`)
	digits   = regexp.MustCompile(`[0-9]`)
)

// firstTag returns the first bracketed substring of name, brackets
// included, or "" when name has no complete bracket pair. Only the
// leftmost "[" and the next "]" after it are considered; anything
// after that pair is ignored.
func firstTag(name string) string {
	open := strings.Index(name, "[")
	if open < 0 {
		return ""
	}
	length := strings.Index(name[open:], "]")
	if length < 0 {
		return ""
	}
	return name[open : open+length+1]
}

// rankTag scans the preference table for the first token whose digit-stripped
// base name occurs in the lower-cased tag. Tokens carrying a numeric suffix
// only match when the tag's first digit run equals the token's exactly;
// bare tokens match on the base name alone. Returns -1 when nothing matches.
//
// Tag identity stays case-sensitive while this comparison is not, so two
// tags differing only in case form separate groups that rank identically.
// That mirrors the behavior of the tool this replaces.
func rankTag(tag string) int {
	lower := strings.ToLower(tag)
	tagDigits := digitRun.FindString(tag)

	for i, token := range preferenceTable {
		base := strings.ToLower(digits.ReplaceAllString(token, ""))
		if !strings.Contains(lower, base) {
			continue
		}
		tokenDigits := digitRun.FindString(token)
		if tokenDigits == "" || tokenDigits == tagDigits {
			return i
		}
	}
	return -1
}

type group struct {
	key   string
	rank  int
	notes []string
}

// ResolveOrder returns the sequence of note identifiers to emit. With
// grouped=false the map's explicit Order list is replayed, filtered to
// known notes; the filtered list must then cover every entry exactly
// once or the map is internally inconsistent and an error is returned.
// With grouped=true the order is inferred from bracketed family tags.
func (m *DrumMap) ResolveOrder(grouped bool) ([]string, error) {
	if grouped {
		return m.groupedOrder(), nil
	}
	return m.explicitOrder()
}

func (m *DrumMap) explicitOrder() ([]string, error) {
	known := make(map[string]bool, len(m.Entries))
	for _, e := range m.Entries {
		known[e.Note] = true
	}

	order := make([]string, 0, len(m.Order))
	for _, note := range m.Order {
		if known[note] {
			order = append(order, note)
		}
	}

	if len(order) != len(m.Entries) {
		return nil, fmt.Errorf("order list covers %d notes, map has %d entries", len(order), len(m.Entries))
	}
	return order, nil
}

// groupedOrder buckets entries by their bracketed tag and concatenates
// the buckets sorted by preference rank. Entries without a tag are left
// out entirely. Unranked groups (-1) sort before everything else, which
// puts them at the bottom of the piano roll.
func (m *DrumMap) groupedOrder() []string {
	var groups []*group
	byKey := make(map[string]*group)

	for _, e := range m.Entries {
		tag := firstTag(e.Name)
		if tag == "" {
			continue
		}
		g := byKey[tag]
		if g == nil {
			g = &group{key: tag, rank: rankTag(tag)}
			byKey[tag] = g
			groups = append(groups, g)
		}
		g.notes = append(g.notes, e.Note)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].rank < groups[j].rank
	})

	var notes []string
	for _, g := range groups {
		notes = append(notes, g.notes...)
	}
	return notes
}
