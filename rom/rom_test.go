package rom

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRom(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.nes")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func Test_Load(t *testing.T) {
	path := writeRom(t, []byte{0x4E, 0x45, 0x53, 0x1A, 0x00, 0xFF})
	data, err := Load(path)
	assert.Nil(t, err)
	assert.Equal(t, []byte{0x4E, 0x45, 0x53, 0x1A, 0x00, 0xFF}, data)
}

func Test_Load_Empty(t *testing.T) {
	path := writeRom(t, nil)
	data, err := Load(path)
	assert.Nil(t, err)
	assert.Empty(t, data)
}

func Test_Load_Large(t *testing.T) {
	rom := make([]byte, 40*1024)
	for i := range rom {
		rom[i] = uint8(i)
	}
	data, err := Load(writeRom(t, rom))
	assert.Nil(t, err)
	assert.Equal(t, rom, data)
}

func Test_Load_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.nes")
	data, err := Load(path)
	assert.Nil(t, data)

	var fae *FileAccessError
	require.True(t, errors.As(err, &fae))
	assert.Equal(t, "open", fae.Op)
	assert.Equal(t, path, fae.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), path)
}

func Test_Load_Directory(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)

	var fae *FileAccessError
	require.True(t, errors.As(err, &fae))
	assert.Equal(t, "stat", fae.Op)
	assert.ErrorIs(t, err, ErrIsDir)
}
