package embervk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeShader(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadShaderCodeMissingFile(t *testing.T) {
	_, err := loadShaderCode(filepath.Join(t.TempDir(), "vert.spv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShaderLoad))
}

func TestLoadShaderCodeRejectsEmpty(t *testing.T) {
	path := writeShader(t, "empty.spv", nil)

	_, err := loadShaderCode(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShaderLoad))
}

func TestLoadShaderCodeRejectsPartialWords(t *testing.T) {
	path := writeShader(t, "torn.spv", []byte{0x03, 0x02, 0x23})

	_, err := loadShaderCode(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShaderLoad))
	assert.Contains(t, err.Error(), "torn.spv")
}

func TestLoadShaderCodeWholeWords(t *testing.T) {
	data := []byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x01, 0x00}
	path := writeShader(t, "vert.spv", data)

	code, err := loadShaderCode(path)
	require.NoError(t, err)
	assert.Equal(t, data, code)
}
