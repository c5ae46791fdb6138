package config

import (
	"fmt"
	"strings"
)

var (
	knownEngines = []string{"ledongthuc", "docconv"}
	knownLayouts = []string{"columns", "rows"}
	knownFormats = []string{"json", "text"}
	knownOutputs = []string{"stdout", "stderr"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Mode != ModePDF && c.Mode != ModeText {
		return fmt.Errorf("mode must be %q or %q (got %q)", ModePDF, ModeText, c.Mode)
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("output_path must not be empty")
	}
	if err := oneOf("pdf_engine", c.PDFEngine, knownEngines); err != nil {
		return err
	}
	if err := oneOf("pdf_layout", c.PDFLayout, knownLayouts); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	if c.SampleSize < 0 || c.PreviewSize < 0 {
		return fmt.Errorf("sample_size and preview_size must be >= 0")
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if _, err := c.ResolveSources(); err != nil {
		return err
	}

	return nil
}

func (l *LogConfig) validate() error {
	if err := oneOf("format", strings.ToLower(l.Format), knownFormats); err != nil {
		return err
	}
	return oneOf("output", strings.ToLower(l.Output), knownOutputs)
}

func oneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s (got %q)", field, strings.Join(allowed, ", "), value)
}
