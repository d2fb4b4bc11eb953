package book

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Formats are the output formats a book can be rendered to.
var Formats = []string{"html", "markdown", "pdf", "json"}

// Config holds the resolved settings of a compile run.
// The defaults reproduce the fixed directories of a plain run.
type Config struct {
	SourcesDir  string        `mapstructure:"sources" validate:"required"`
	ResultsDir  string        `mapstructure:"results" validate:"required"`
	Format      string        `mapstructure:"format" validate:"oneof=html markdown pdf json"`
	Concurrency int           `mapstructure:"concurrency" validate:"min=1,max=32"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Rate        float64       `mapstructure:"rate" validate:"min=0"`
	SkipFailed  bool          `mapstructure:"skip_failed"`
	UserAgent   string        `mapstructure:"user_agent"`
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		SourcesDir:  "sources",
		ResultsDir:  "results",
		Format:      "html",
		Concurrency: 1,
		Timeout:     30 * time.Second,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
