package core

// RuntimeConfig contains configuration passed to drivers at startup.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Redraw rate; independent of the game's tick cadence
	Seed    int64 // RNG seed for deterministic gameplay (0 = time based)
	Skin    Skin  // Initial skin
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     30,
		Seed:    0, // 0 means use current time in platform layer
		Skin:    SkinClassic,
	}
}
