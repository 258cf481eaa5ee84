package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolsite/pkg/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "--strict")
	require.NoError(t, err)
	for _, lang := range []string{"en", "es", "fr", "de", "pt", "ja", "zh"} {
		assert.Contains(t, out, lang+": ok")
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", "--out", dir, "--base-url", "https://static.example.org")
	require.NoError(t, err)
	assert.Contains(t, out, "exported 91 pages")

	robots, err := os.ReadFile(filepath.Join(dir, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Sitemap: https://static.example.org/sitemap.xml")
	assert.FileExists(t, filepath.Join(dir, "fr", "index.html"))
}

func TestExportCommand_InvalidBaseURL(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "export", "--out", dir, "--base-url", "not a url")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.NoFileExists(t, filepath.Join(dir, "robots.txt"))
}

func TestExportCommand_NoTarget(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	_, err := run(t, "export")
	assert.ErrorIs(t, err, errNoTarget)
}

func TestUnknownCommand(t *testing.T) {
	_, err := run(t, "publish")
	assert.Error(t, err)
}
