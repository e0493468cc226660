// Package config loads the CLI wrapper's static configuration: the fixed
// programs directory and file extension spec.md §6 says a program stem is
// resolved against.
//
// Grounded on internal/tqw/tqw.go's ScanFileInfo, which unmarshals a TOML
// header with github.com/BurntSushi/toml; Olive's config is simpler (no
// partial-document scan is needed) so this just reads the file and passes
// its contents to toml.Decode.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI wrapper's static settings.
type Config struct {
	// ProgramsDir is the directory program stems are resolved against.
	ProgramsDir string `toml:"programs_dir"`

	// ProgramExt is the fixed file extension appended to a resolved program
	// stem, including the leading dot.
	ProgramExt string `toml:"program_ext"`

	// DefaultProgram is used when the CLI's positional argument is absent.
	DefaultProgram string `toml:"default_program"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		ProgramsDir:    "programs",
		ProgramExt:     ".olv",
		DefaultProgram: "main",
	}
}

// Load reads a TOML config file at path, filling any field the file leaves
// unset from Default(). A missing file is not an error; Default() is
// returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ResolveProgramPath joins cfg's programs directory, the given stem (or
// cfg.DefaultProgram if stem is empty), and cfg's extension into a source
// file path.
func (cfg Config) ResolveProgramPath(stem string) string {
	if stem == "" {
		stem = cfg.DefaultProgram
	}
	return cfg.ProgramsDir + string(os.PathSeparator) + stem + cfg.ProgramExt
}
