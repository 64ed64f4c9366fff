package mermaid

import "fmt"

// Theme names one of the built-in Mermaid color themes.
type Theme string

const (
	ThemeMC        Theme = "mc"
	ThemeNeo       Theme = "neo"
	ThemeNeoDark   Theme = "neo-dark"
	ThemeDefault   Theme = "default"
	ThemeForest    Theme = "forest"
	ThemeBase      Theme = "base"
	ThemeDark      Theme = "dark"
	ThemeNeutral   Theme = "neutral"
	ThemeRedux     Theme = "redux"
	ThemeReduxDark Theme = "redux-dark"
)

// ParseTheme maps a token to a Theme.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeMC, ThemeNeo, ThemeNeoDark, ThemeDefault, ThemeForest,
		ThemeBase, ThemeDark, ThemeNeutral, ThemeRedux, ThemeReduxDark:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}
