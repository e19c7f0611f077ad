package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTargetsByHeader(t *testing.T) {
	input := "label,target\nsmall,37\n# comment\nmedium, 42\nbad,abc\nshort\nbig,10000\n"

	targets, err := NewCSVProvider().ReadTargets(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int{37, 42, 10000}, targets)
}

func TestReadTargetsFallbackColumn(t *testing.T) {
	targets, err := NewCSVProvider().ReadTargets(strings.NewReader("amount\n10\n\n11\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, targets)
}

func TestReadTargetsHeaderless(t *testing.T) {
	p := NewCSVProviderWithFormat(HeaderlessCSVFormat)
	targets, err := p.ReadTargets(strings.NewReader("0\n15\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 15}, targets)
}

func TestReadTargetsEmpty(t *testing.T) {
	_, err := NewCSVProvider().ReadTargets(strings.NewReader(""))
	assert.EqualError(t, err, "no targets found")

	_, err = NewCSVProvider().ReadTargets(strings.NewReader("target\nx\n"))
	assert.EqualError(t, err, "no targets found")
}

func TestLoadTargetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.csv")
	require.NoError(t, os.WriteFile(path, []byte("target\n37\n42\n"), 0o644))

	p := NewCSVProvider()
	assert.Equal(t, "CSV Provider", p.GetName())

	targets, err := p.LoadTargets(path)
	require.NoError(t, err)
	assert.Equal(t, []int{37, 42}, targets)

	_, err = p.LoadTargets(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, os.IsNotExist(err))
}
