package config

// Theme is a named color palette. The settings screen cycles through these
// and the choice is persisted to prefs.
type Theme struct {
	Name           string
	HeaderFG       string
	HelpFG         string
	Accent         string
	StatusPositive string
	StatusNegative string
	PanelBorder    string
	OverlayBG      string
	OverlayFG      string
	SelectedFG     string
	SelectedBG     string
}

var themes = map[string]Theme{
	"night": {
		Name:           "night",
		HeaderFG:       "#8BE9FD",
		HelpFG:         "#6272A4",
		Accent:         "#50FA7B",
		StatusPositive: "#50FA7B",
		StatusNegative: "#FF5555",
		PanelBorder:    "#BD93F9",
		OverlayBG:      "#282A36",
		OverlayFG:      "#F8F8F2",
		SelectedFG:     "#282A36",
		SelectedBG:     "#50FA7B",
	},
	"day": {
		Name:           "day",
		HeaderFG:       "#005F87",
		HelpFG:         "#6C6C6C",
		Accent:         "#008700",
		StatusPositive: "#008700",
		StatusNegative: "#D70000",
		PanelBorder:    "#5F5FAF",
		OverlayBG:      "#EEEEEE",
		OverlayFG:      "#1C1C1C",
		SelectedFG:     "#EEEEEE",
		SelectedBG:     "#005F87",
	},
	"desert": {
		Name:           "desert",
		HeaderFG:       "#FFB86C",
		HelpFG:         "#A8A080",
		Accent:         "#F1FA8C",
		StatusPositive: "#A3BE8C",
		StatusNegative: "#BF616A",
		PanelBorder:    "#D08770",
		OverlayBG:      "#3B3228",
		OverlayFG:      "#F4E8D0",
		SelectedFG:     "#3B3228",
		SelectedBG:     "#FFB86C",
	},
}

// GetTheme resolves a theme by name, falling back to night.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["night"]
}

// ThemeNames lists the selectable themes in a stable order.
func ThemeNames() []string {
	return []string{"night", "day", "desert"}
}
