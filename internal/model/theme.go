package model

// Theme is a named palette with one border color
type Theme struct {
	ID     string
	Name   string
	Colors []string
	Border string
}

// Primary returns the first palette color
func (t Theme) Primary() string {
	if len(t.Colors) == 0 {
		return t.Border
	}
	return t.Colors[0]
}

// ColorAt returns the palette color for index i, cycling when i exceeds the palette
func (t Theme) ColorAt(i int) string {
	if len(t.Colors) == 0 {
		return t.Border
	}
	if i < 0 {
		i = -i
	}
	return t.Colors[i%len(t.Colors)]
}

// Theme ids of the built-in catalog
const (
	ThemeBlue   = "blue"
	ThemeGreen  = "green"
	ThemeRed    = "red"
	ThemePurple = "purple"
	ThemeDark   = "dark"
)

var themes = []Theme{
	{
		ID:     ThemeBlue,
		Name:   "Blue",
		Colors: []string{"#3b82f6", "#60a5fa", "#93c5fd", "#2563eb", "#1d4ed8", "#bfdbfe"},
		Border: "#1e40af",
	},
	{
		ID:     ThemeGreen,
		Name:   "Green",
		Colors: []string{"#10b981", "#34d399", "#6ee7b7", "#059669", "#047857", "#bbf7d0"},
		Border: "#065f46",
	},
	{
		ID:     ThemeRed,
		Name:   "Red",
		Colors: []string{"#ef4444", "#f87171", "#fca5a5", "#dc2626", "#b91c1c", "#fecaca"},
		Border: "#991b1b",
	},
	{
		ID:     ThemePurple,
		Name:   "Purple",
		Colors: []string{"#8b5cf6", "#ec4899", "#f59e0b", "#06b6d4", "#a78bfa", "#f472b6"},
		Border: "#5b21b6",
	},
	{
		ID:     ThemeDark,
		Name:   "Dark Mode",
		Colors: []string{"#1f2937", "#374151", "#4b5563", "#6b7280", "#9ca3af", "#d1d5db"},
		Border: "#111827",
	},
}

// Themes returns a copy of the theme catalog in display order
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// LookupTheme returns the catalog theme with the given id
func LookupTheme(id string) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeOrDefault returns the theme with the given id, or the first catalog theme
func ThemeOrDefault(id string) Theme {
	if t, ok := LookupTheme(id); ok {
		return t
	}
	return themes[0]
}
