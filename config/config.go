package config

// HDRTRANS_CFG is the default config file name.
const HDRTRANS_CFG = "hdrtrans.cfg"

// Config is the hdrtrans.cfg schema.
type Config struct {
	Name              string   `json:"name"`
	CFlags            string   `json:"cflags"`
	Include           []string `json:"include"`
	IncludeDirs       []string `json:"includeDirs"`
	TrimPrefixes      []string `json:"trimPrefixes"`
	IgnoredNamespaces []string `json:"ignoredNamespaces"`
	Cplusplus         bool     `json:"cplusplus"`
	Preprocessor      string   `json:"preprocessor"`
	OutputDir         string   `json:"outputDir"`
}

func NewDefault() *Config {
	return &Config{Preprocessor: "cpp"}
}
