package template

import "fmt"

func logoSVG(stroke, glyph string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">`+
		`<circle cx="50" cy="50" r="44" fill="none" stroke="%s" stroke-width="6"/>`+
		`<text x="50" y="64" font-size="40" text-anchor="middle" fill="%s">%s</text></svg>`, stroke, stroke, glyph)
}

// Logos are the village emblems served under /static.
var Logos = map[string]string{
	"konoha.svg": logoSVG("#dc2626", "木"),
	"suna.svg":   logoSVG("#d97706", "砂"),
	"ame.svg":    logoSVG("#64748b", "雨"),
	"kiri.svg":   logoSVG("#0ea5e9", "霧"),
}
