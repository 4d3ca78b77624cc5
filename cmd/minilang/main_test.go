package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeSource(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.mini")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunFileSucceeds(t *testing.T) {
	path := writeSource(t, `func main(argc) [ print 1 + 2; ]`)
	var stdout, stderr bytes.Buffer

	code := run([]string{path}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "3")
	assert.Empty(t, stderr.String())
}

func TestRunFileParseErrorExitsNonzero(t *testing.T) {
	path := writeSource(t, `func main(argc) [ 1 2 3 ]`)
	var stdout, stderr bytes.Buffer

	code := run([]string{path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "PARSE ERROR")
}

func TestRunMissingFileArgumentExitsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "USAGE ERROR")
}

func TestRunUnreadableFileExitsNonzero(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{filepath.Join(t.TempDir(), "nope.mini")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "FILE ERROR")
}

func TestRunVersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), VERSION)
}

func TestRunInvalidLogLevelIsUsageError(t *testing.T) {
	path := writeSource(t, `func main(argc) [ print 1; ]`)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--loglevel", "noisy", path}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "USAGE ERROR")
}

func TestRunConfigFileSetsLogLevel(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "minilang.yaml")
	assert.NoError(t, os.WriteFile(cfgPath, []byte("loglevel: debug\n"), 0o644))
	path := writeSource(t, `func main(argc) [ print 1; ]`)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", cfgPath, path}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "[DEBUG]")
}

func TestRunFlagOverridesConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "minilang.yaml")
	assert.NoError(t, os.WriteFile(cfgPath, []byte("loglevel: debug\n"), 0o644))
	path := writeSource(t, `func main(argc) [ print 1; ]`)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", cfgPath, "--loglevel", "none", path}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.NotContains(t, stdout.String(), "[DEBUG]")
}
