package yml

import (
	"bytes"
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return "yml-context-key-" + string(c)
}

const configContextKey = contextKey("config")

type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// Config controls how nodes are created and written.
type Config struct {
	Indentation     int          // The indentation width used when writing
	OutputFormat    OutputFormat // The output format to use when marshalling
	OriginalFormat  OutputFormat // The format the input was read in
	TrailingNewline bool         // Whether the original input ended with a newline
}

var defaultConfig = &Config{
	Indentation:     2,
	OutputFormat:    OutputFormatYAML,
	OriginalFormat:  OutputFormatYAML,
	TrailingNewline: true,
}

// GetDefaultConfig returns a copy of the default config.
func GetDefaultConfig() *Config {
	cfg := *defaultConfig
	return &cfg
}

// ContextWithConfig returns a context carrying config. A nil config leaves ctx untouched.
func ContextWithConfig(ctx context.Context, config *Config) context.Context {
	if config == nil {
		return ctx
	}

	return context.WithValue(ctx, configContextKey, config)
}

// GetConfigFromContext returns the config carried by ctx or a copy of the default config.
func GetConfigFromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok || cfg == nil {
		return GetDefaultConfig()
	}

	return cfg
}

// GetConfigFromData inspects raw input and returns a config that writes it back in the same format.
func GetConfigFromData(data []byte) *Config {
	cfg := GetDefaultConfig()

	cfg.OutputFormat, cfg.Indentation = inspectData(data)
	cfg.OriginalFormat = cfg.OutputFormat
	cfg.TrailingNewline = len(data) > 0 && data[len(data)-1] == '\n'

	return cfg
}

func inspectData(data []byte) (OutputFormat, int) {
	format := OutputFormatYAML
	indentation := 2

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		format = OutputFormatJSON
	}

	baseline := -1
	for _, line := range bytes.Split(trimmed, []byte("\n")) {
		content := bytes.TrimLeft(line, " ")
		if len(content) == 0 || content[0] == '#' {
			continue
		}

		leading := len(line) - len(content)
		if baseline == -1 || leading < baseline {
			baseline = leading
			continue
		}

		if leading > baseline {
			indentation = leading - baseline
			break
		}
	}

	return format, indentation
}
