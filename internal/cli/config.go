package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ErikRauer/3DHypergraphGenerator/builder"
)

// Config is the on-disk configuration read by --config.
//
// Example file:
//
//	[generate]
//	graphs = 10
//	vertices = 6
//	arcs = 4
//	seed = 42
//	p_two_head = 0.25
//	p_two_tail = 0.25
//	format = "json"
type Config struct {
	Generate GenerateConfig `toml:"generate"`
}

// GenerateConfig holds the generate command's parameters.
// A nil Seed means "derive one from the clock"; seed = 0 is a real seed.
type GenerateConfig struct {
	Graphs   int     `toml:"graphs"`
	Vertices int     `toml:"vertices"`
	Arcs     int     `toml:"arcs"`
	Seed     *int64  `toml:"seed"`
	PTwoHead float64 `toml:"p_two_head"`
	PTwoTail float64 `toml:"p_two_tail"`
	Format   string  `toml:"format"`
	Workers  int     `toml:"workers"`
}

// defaultConfig returns the values used when neither a file nor a flag sets them.
func defaultConfig() Config {
	return Config{Generate: GenerateConfig{
		Graphs:   1,
		Vertices: 5,
		Arcs:     4,
		PTwoHead: builder.DefaultTwoHeadProbability,
		PTwoTail: builder.DefaultTwoTailProbability,
		Format:   formatText,
	}}
}

// loadConfig overlays the TOML file at path on top of defaultConfig.
// Keys absent from the file keep their defaults; unknown keys are an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}
