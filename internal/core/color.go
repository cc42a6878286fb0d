package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorGray
)

// Skin selects one of three cosmetic snake styles. It has no gameplay effect.
type Skin int

const (
	SkinClassic Skin = 1 // green
	SkinIce     Skin = 2 // cyan
	SkinGold    Skin = 3 // yellow
)

// Valid reports whether s is one of the three known skins.
func (s Skin) Valid() bool {
	return s >= SkinClassic && s <= SkinGold
}

func (s Skin) String() string {
	switch s {
	case SkinClassic:
		return "classic"
	case SkinIce:
		return "ice"
	case SkinGold:
		return "gold"
	default:
		return "unknown"
	}
}
