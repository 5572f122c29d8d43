package pricing

const (
	StyleClassic = "classic"
	StyleElegant = "elegant"
	StyleVintage = "vintage"

	PrintNone = "none"
)

// The option lists are informational. Nothing rejects a value outside them.
var (
	Styles = []string{
		StyleClassic, "sporty", StyleElegant, "casual", StyleVintage,
		"modern", "minimalist", "colorful", "monochrome",
	}
	Prints = []string{
		"floral", "geometric", "animal-print", "abstract", "text",
		"logo", "stripes", "checks", "dots", PrintNone,
	}
	Colors = []string{
		"white", "black", "gray", "blue", "red", "green", "yellow",
		"orange", "pink", "purple", "brown", "beige", "navy",
	}
)
