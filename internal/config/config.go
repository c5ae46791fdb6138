package config

import (
	"time"
)

// Input modes.
const (
	ModePDF  = "pdf"
	ModeText = "text"
)

// Config is the root configuration of the word-list extractor.
type Config struct {
	Mode        string         `yaml:"mode"         env:"WORDLIST_MODE"        env-default:"pdf"`
	InputDir    string         `yaml:"input_dir"    env:"WORDLIST_INPUT_DIR"   env-default:"."`
	OutputPath  string         `yaml:"output_path"  env:"WORDLIST_OUTPUT"      env-default:"words.json"`
	PDFEngine   string         `yaml:"pdf_engine"   env:"WORDLIST_PDF_ENGINE"  env-default:"ledongthuc"`
	PDFLayout   string         `yaml:"pdf_layout"   env:"WORDLIST_PDF_LAYOUT"  env-default:"columns"`
	Timeout     time.Duration  `yaml:"timeout"      env:"WORDLIST_TIMEOUT"     env-default:"5m"`
	Boilerplate []string       `yaml:"boilerplate"  env:"WORDLIST_BOILERPLATE" env-separator:","`
	DryRun      bool           `yaml:"dry_run"      env:"WORDLIST_DRY_RUN"`
	SampleSize  int            `yaml:"sample_size"  env:"WORDLIST_SAMPLE_SIZE" env-default:"5"`
	PreviewSize int            `yaml:"preview_size" env:"WORDLIST_PREVIEW_SIZE" env-default:"20"`
	Sources     []SourceConfig `yaml:"sources"`
	Log         LogConfig      `yaml:"log"`
}

// SourceConfig overrides the built-in source set. YAML only.
type SourceConfig struct {
	Path       string   `yaml:"path"`
	Kind       string   `yaml:"kind"`
	Level      string   `yaml:"level"`
	Levels     []string `yaml:"levels"`
	SectionEnd string   `yaml:"section_end"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	Output string `yaml:"output" env:"LOG_OUTPUT" env-default:"stdout"`
}
