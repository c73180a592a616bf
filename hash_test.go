package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func Test_shouldHashTheSameTreeToTheSameValue(t *testing.T) {
	// Given
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "handler.go"), "package hello")
	writeFile(t, filepath.Join(dir, "nested", "main.go"), "package main")

	// When
	first, err := hashSources(dir)
	require.NoError(t, err)
	second, err := hashSources(dir)
	require.NoError(t, err)

	// Then
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func Test_shouldChangeTheHashWhenAFileChanges(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "handler.go")
	writeFile(t, path, "package hello")
	before, err := hashSources(dir)
	require.NoError(t, err)

	// When
	writeFile(t, path, "package hello // edited")
	after, err := hashSources(dir)
	require.NoError(t, err)

	// Then
	assert.NotEqual(t, before, after)
}

func Test_shouldChangeTheHashWhenAFileIsRenamed(t *testing.T) {
	// Given
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.go"), "package hello")
	before, err := hashSources(dir)
	require.NoError(t, err)

	// When
	require.NoError(t, os.Rename(filepath.Join(dir, "a.go"), filepath.Join(dir, "b.go")))
	after, err := hashSources(dir)
	require.NoError(t, err)

	// Then
	assert.NotEqual(t, before, after)
}

func Test_shouldChangeTheHashWhenABuildFileChanges(t *testing.T) {
	// Given
	dir := t.TempDir()
	src := filepath.Join(dir, "hello")
	gomod := filepath.Join(dir, "go.mod")
	dockerfile := filepath.Join(dir, "Dockerfile")
	writeFile(t, filepath.Join(src, "handler.go"), "package hello")
	writeFile(t, gomod, "module hello-lambda\n")
	writeFile(t, dockerfile, "FROM scratch\n")
	before, err := hashSources(src, gomod, dockerfile)
	require.NoError(t, err)

	// When
	writeFile(t, gomod, "module hello-lambda\n\ngo 1.22\n")
	afterGoMod, err := hashSources(src, gomod, dockerfile)
	require.NoError(t, err)
	writeFile(t, dockerfile, "FROM alpine\n")
	afterDockerfile, err := hashSources(src, gomod, dockerfile)
	require.NoError(t, err)

	// Then
	assert.NotEqual(t, before, afterGoMod)
	assert.NotEqual(t, afterGoMod, afterDockerfile)
}

func Test_shouldIgnoreTestFiles(t *testing.T) {
	// Given
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "handler.go"), "package hello")
	before, err := hashSources(dir)
	require.NoError(t, err)

	// When
	writeFile(t, filepath.Join(dir, "handler_test.go"), "package hello_test")
	after, err := hashSources(dir)
	require.NoError(t, err)

	// Then
	assert.Equal(t, before, after)
}

func Test_shouldSkipMissingPaths(t *testing.T) {
	// Given
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "handler.go"), "package hello")
	want, err := hashSources(dir)
	require.NoError(t, err)

	// When
	got, err := hashSources(dir, filepath.Join(dir, "go.sum"))

	// Then
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_shouldShortenTheSourceTag(t *testing.T) {
	// Given
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "handler.go"), "package hello")
	sum, err := hashSources(dir)
	require.NoError(t, err)

	// When
	tag, err := sourceTag(dir)

	// Then
	require.NoError(t, err)
	assert.Equal(t, sum[:12], tag)
}
