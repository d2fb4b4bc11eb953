package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gaurav-prasanna/wikibook/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("info by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Options{Output: &buf})

		log.Debug("hidden")
		log.Info("compiling list", "list", "physics.txt")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "list=physics.txt")
	})

	t.Run("debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger.New(logger.Options{Debug: true, Output: &buf}).Debug("fetching page")

		assert.Contains(t, buf.String(), "fetching page")
	})

	t.Run("quiet wins over debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Options{Debug: true, Quiet: true, Output: &buf})

		log.Warn("skipping page")
		log.Error("failed")

		assert.NotContains(t, buf.String(), "skipping page")
		assert.Contains(t, buf.String(), "failed")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger.New(logger.Options{JSON: true, Output: &buf}).Info("written", "path", "results/physics.html")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "written", entry["msg"])
		assert.Equal(t, "results/physics.html", entry["path"])
	})
}
