package config

// File represents the structure of the kitfetch.yaml configuration file.
// Every field is optional; unset fields fall back to the built-in defaults.
type File struct {
	// Mirror overrides the repository root URL.
	Mirror string `yaml:"mirror"`
	// HTTPTimeout overrides the catalog/metadata request timeout, as a Go
	// duration string such as "45s".
	HTTPTimeout string `yaml:"http_timeout"`
	// ExtractTool overrides the external extraction command.
	ExtractTool string `yaml:"extract_tool"`
	// ExtractArgs overrides the arguments passed before the archive path.
	ExtractArgs []string `yaml:"extract_args"`
}
