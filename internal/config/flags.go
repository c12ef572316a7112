package config

import "flag"

// unsetSeed marks the -seed flag as not given.
const unsetSeed = -1

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSeed       = flag.Int64("seed", unsetSeed, "Noise seed (0 is the reference permutation)")
	flagGrid       = flag.Int("grid", 0, "Terrain cells along X and Z")
	flagNoise      = flag.String("noise", "", "Noise source: improved, classic or simplex")
	flagNormals    = flag.String("normals", "", "Vertex normals: up or computed")
	flagWireframe  = flag.Bool("wireframe", false, "Render terrain as wireframe")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagSeed != unsetSeed {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagGrid > 0 {
		cfg.Terrain.Width = *flagGrid
		cfg.Terrain.Depth = *flagGrid
	}
	if *flagNoise != "" {
		cfg.Terrain.Noise = *flagNoise
	}
	if *flagNormals != "" {
		cfg.Terrain.Normals = *flagNormals
	}
	if *flagWireframe {
		cfg.Window.Wireframe = true
	}
}
