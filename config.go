package foamshot

// Config is the CLI/config-file-populated value object consumed by Run.
// cmd/foamshot builds this from cobra flags overlaid with a viper-read
// config file; nothing in the engine reads flags or env vars directly.
type Config struct {
	OutputDir  string
	OutputFile string // strftime-style placeholders: %Y %m %d %H %M %S

	ShowCursor bool

	DisableCopy   bool
	DisableFreeze bool
	DisableNotify bool

	JumpToFullScreen bool
	EnterEditMode    bool

	EditThreshold int
	JPEGQuality   int
}

// DefaultConfig mirrors the CLI's flag defaults.
func DefaultConfig() Config {
	return Config{
		OutputDir:     ".",
		OutputFile:    "%Y%m%d_%H%M%S_foamshot.png",
		EditThreshold: 8,
		JPEGQuality:   100,
	}
}
