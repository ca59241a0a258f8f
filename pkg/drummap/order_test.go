package drummap

import (
	"testing"
)

func TestFirstTag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple tag", "Bass Drum [Kick]", "[Kick]"},
		{"tag only", "[Snare]", "[Snare]"},
		{"no tag", "Bass Drum", ""},
		{"empty name", "", ""},
		{"unclosed bracket", "Bass Drum [Kick", ""},
		{"closing before opening", "Kick] [Snare]", "[Snare]"},
		{"two pairs takes leftmost", "Hi [Hat] Pedal [Foot]", "[Hat]"},
		{"nested opener kept literally", "Odd [[Tom] Name", "[[Tom]"},
		{"empty brackets", "Nameless []", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstTag(tt.input); got != tt.expected {
				t.Errorf("firstTag(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRankTag(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		expected int
	}{
		{"kick is lowest rank", "[Kick]", 0},
		{"snare", "[Snare]", 1},
		{"hat", "[Hat]", 12},
		{"splash is highest rank", "[Splash]", 18},
		{"case insensitive match", "[KICK]", 0},
		{"base name as substring", "[Tambourine]", 11},
		{"cowbell wins over bell", "[Cowbell]", 10},
		{"crash 1 exact digits", "[Crash 1]", 15},
		{"crash 2 skips crash 1 token", "[Crash 2]", 16},
		{"bare token ignores digits in tag", "[Hat 3]", 12},
		{"digit run must match exactly", "[Tom 12]", -1},
		{"unknown family", "[Foo]", -1},
		{"no digits where token needs them", "[Tom]", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rankTag(tt.tag); got != tt.expected {
				t.Errorf("rankTag(%q) = %d, want %d", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestResolveExplicitOrder(t *testing.T) {
	m := &DrumMap{
		Entries: []NoteEntry{
			{Note: "1", Name: "Bass Drum [Kick]"},
			{Note: "2", Name: "Closed Hat [Hat]"},
		},
		Order: []string{"2", "1"},
	}

	order, err := m.ResolveOrder(false)
	if err != nil {
		t.Fatalf("ResolveOrder() error = %v", err)
	}
	assertOrder(t, order, []string{"2", "1"})
}

func TestResolveExplicitFiltersUnknownNotes(t *testing.T) {
	m := &DrumMap{
		Entries: []NoteEntry{
			{Note: "1", Name: "Bass Drum [Kick]"},
			{Note: "2", Name: "Closed Hat [Hat]"},
		},
		Order: []string{"2", "99", "1"},
	}

	order, err := m.ResolveOrder(false)
	if err != nil {
		t.Fatalf("ResolveOrder() error = %v", err)
	}
	assertOrder(t, order, []string{"2", "1"})
}

func TestResolveExplicitIncompleteOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []string
	}{
		{"missing note", []string{"1"}},
		{"no order list", nil},
		{"only unknown notes", []string{"98", "99"}},
		{"duplicate note", []string{"1", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &DrumMap{
				Entries: []NoteEntry{
					{Note: "1", Name: "Bass Drum [Kick]"},
					{Note: "2", Name: "Closed Hat [Hat]"},
				},
				Order: tt.order,
			}
			if _, err := m.ResolveOrder(false); err == nil {
				t.Error("ResolveOrder() expected error, got nil")
			}
		})
	}
}

func TestResolveGroupedUnrankedFirst(t *testing.T) {
	m := &DrumMap{
		Entries: []NoteEntry{
			{Note: "1", Name: "Bass Drum [Kick]"},
			{Note: "2", Name: "Closed Hat [Hat]"},
			{Note: "3", Name: "Weird [Foo]"},
		},
	}

	order, err := m.ResolveOrder(true)
	if err != nil {
		t.Fatalf("ResolveOrder() error = %v", err)
	}

	// [Foo] has no rank and sorts to the front, then ranks ascending:
	// kick (0) before hat (12)
	assertOrder(t, order, []string{"3", "1", "2"})
}

func TestResolveGroupedDropsUntaggedEntries(t *testing.T) {
	m := &DrumMap{
		Entries: []NoteEntry{
			{Note: "1", Name: "Bass Drum [Kick]"},
			{Note: "2", Name: "No Tag Here"},
			{Note: "3", Name: "Half Open [Bracket"},
		},
	}

	order, err := m.ResolveOrder(true)
	if err != nil {
		t.Fatalf("ResolveOrder() error = %v", err)
	}
	assertOrder(t, order, []string{"1"})
}

func TestResolveGroupedKeepsWithinGroupOrder(t *testing.T) {
	m := &DrumMap{
		Entries: []NoteEntry{
			{Note: "10", Name: "Snare Hard [Snare]"},
			{Note: "11", Name: "Kick Tight [Kick]"},
			{Note: "12", Name: "Snare Soft [Snare]"},
			{Note: "13", Name: "Snare Rim [Snare]"},
		},
	}

	order, err := m.ResolveOrder(true)
	if err != nil {
		t.Fatalf("ResolveOrder() error = %v", err)
	}

	// Kick ranks below snare; snare notes keep first-seen order
	assertOrder(t, order, []string{"11", "10", "12", "13"})
}

func TestResolveGroupedTagKeysAreCaseSensitive(t *testing.T) {
	m := &DrumMap{
		Entries: []NoteEntry{
			{Note: "1", Name: "A [Hat]"},
			{Note: "2", Name: "B [HAT]"},
			{Note: "3", Name: "C [Hat]"},
		},
	}

	order, err := m.ResolveOrder(true)
	if err != nil {
		t.Fatalf("ResolveOrder() error = %v", err)
	}

	// [Hat] and [HAT] rank the same but stay separate groups; the tie is
	// broken by first-seen group order
	assertOrder(t, order, []string{"1", "3", "2"})
}

func TestResolveGroupedCrashDigitsStaySeparate(t *testing.T) {
	m := &DrumMap{
		Entries: []NoteEntry{
			{Note: "1", Name: "Crash High [Crash 2]"},
			{Note: "2", Name: "Crash Low [Crash 1]"},
		},
	}

	order, err := m.ResolveOrder(true)
	if err != nil {
		t.Fatalf("ResolveOrder() error = %v", err)
	}

	// crash 1 ranks below crash 2 even though crash 2 appeared first
	assertOrder(t, order, []string{"2", "1"})
}

func assertOrder(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got order %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got order %v, want %v", got, want)
		}
	}
}
