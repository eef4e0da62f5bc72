package app

import "fmt"

// Output formats accepted by Config.Output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds everything an App instance needs to run.
type Config struct {
	GridPath string // matrix definition file or directory

	MatrixName string // when set, expand only this matrix
	Output     string // "text" or "json"

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" {
		return nil, fmt.Errorf("GridPath is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		cfg.Output = OutputText
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return nil, fmt.Errorf("invalid output format %q: must be %q or %q", cfg.Output, OutputText, OutputJSON)
	}
	return &cfg, nil
}
