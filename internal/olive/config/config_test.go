package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Default_HasUsableProgramsPath(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(filepath.Join("programs", "main.olv"), cfg.ResolveProgramPath(""))
}

func Test_Load_MissingFileReturnsDefault(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.NoError(err)
	assert.Equal(Default(), cfg)
}

func Test_Load_OverridesDefaults(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "olive.toml")
	contents := "programs_dir = \"testdata\"\nprogram_ext = \".oli\"\n"
	assert.NoError(os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal("testdata", cfg.ProgramsDir)
	assert.Equal(".oli", cfg.ProgramExt)
	assert.Equal("main", cfg.DefaultProgram)
}

func Test_ResolveProgramPath_UsesGivenStem(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(filepath.Join("programs", "hello.olv"), cfg.ResolveProgramPath("hello"))
}
