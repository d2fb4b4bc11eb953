package book_test

import (
	"testing"
	"time"

	"github.com/gaurav-prasanna/wikibook/core/book"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*book.Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(*book.Config) {}},
		{name: "every format", modify: func(c *book.Config) { c.Format = "pdf" }},
		{name: "rate and timeout", modify: func(c *book.Config) { c.Rate = 2.5; c.Timeout = time.Minute }},
		{name: "unknown format", modify: func(c *book.Config) { c.Format = "epub" }, wantErr: true},
		{name: "zero concurrency", modify: func(c *book.Config) { c.Concurrency = 0 }, wantErr: true},
		{name: "too much concurrency", modify: func(c *book.Config) { c.Concurrency = 64 }, wantErr: true},
		{name: "zero timeout", modify: func(c *book.Config) { c.Timeout = 0 }, wantErr: true},
		{name: "negative timeout", modify: func(c *book.Config) { c.Timeout = -time.Second }, wantErr: true},
		{name: "negative rate", modify: func(c *book.Config) { c.Rate = -1 }, wantErr: true},
		{name: "no sources", modify: func(c *book.Config) { c.SourcesDir = "" }, wantErr: true},
		{name: "no results", modify: func(c *book.Config) { c.ResultsDir = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := book.DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := book.DefaultConfig()

	assert.Equal(t, "sources", cfg.SourcesDir)
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, 1, cfg.Concurrency)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.SkipFailed)
}
