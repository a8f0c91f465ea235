package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0644))
	other := t.TempDir()
	missing := filepath.Join(dir, "missing")

	assert.Equal(t, dir, firstDir(parentDir(file), other))
	assert.Equal(t, other, firstDir("", missing, file, other))
	assert.Equal(t, dir, firstDir(parentDir(filepath.Join(dir, "not-yet.txt"))))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, firstDir("", missing))
	assert.Equal(t, "", parentDir(""))
}
