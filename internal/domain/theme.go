package domain

// Theme is the color palette derived from the persisted dark/light flag.
// It is computed, never stored.
type Theme struct {
	IsDark        bool
	Primary       string
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Border        string
	Card          string
}

// Colors derives the palette for the given mode.
func Colors(isDark bool) Theme {
	t := Theme{
		IsDark:        isDark,
		Primary:       "#007AFF",
		Background:    "#FFFFFF",
		Surface:       "#F2F2F7",
		Text:          "#000000",
		TextSecondary: "#8E8E93",
		Border:        "#C6C6C8",
		Card:          "#FFFFFF",
	}
	if isDark {
		t.Background = "#1C1C1E"
		t.Surface = "#2C2C2E"
		t.Text = "#FFFFFF"
		t.TextSecondary = "#AEAEB2"
		t.Border = "#38383A"
		t.Card = "#2C2C2E"
	}
	return t
}
