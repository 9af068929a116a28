package probemap

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultInitialCapacity = 10
	defaultLoadFactor      = 0.75
	defaultStep            = 1
)

// Config holds the construction parameters of a Map.
type Config struct {
	// InitialCapacity is the number of slots allocated by New. Quadratic
	// tables round it up to the next power of two.
	InitialCapacity int `toml:"initial_capacity"`

	// LoadFactor is the largest size/capacity ratio a Map holds after Put
	// returns. Must be in (0, 1].
	LoadFactor float64 `toml:"load_factor"`

	Strategy Strategy `toml:"strategy"`

	// Step is the Linear probe stride. The sequence visits every slot only
	// when gcd(Step, capacity) == 1; with any other stride Put can report
	// ErrNoSlotAvailable while free slots remain. Ignored by the other
	// strategies.
	Step int `toml:"step"`
}

// DefaultConfig returns a linear-probing config with 10 slots, a 0.75 load
// factor and a step of 1.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: defaultInitialCapacity,
		LoadFactor:      defaultLoadFactor,
		Strategy:        Linear,
		Step:            defaultStep,
	}
}

// Validate reports why c cannot be used to build a Map.
func (c Config) Validate() error {
	if c.InitialCapacity <= 0 {
		return fmt.Errorf("%w: initial capacity %d must be positive", ErrInvalidConfig, c.InitialCapacity)
	}
	// written this way round so NaN is rejected too
	if !(c.LoadFactor > 0 && c.LoadFactor <= 1) {
		return fmt.Errorf("%w: load factor %v must be in (0, 1]", ErrInvalidConfig, c.LoadFactor)
	}
	if !c.Strategy.valid() {
		return fmt.Errorf("%w: unknown strategy %d", ErrInvalidConfig, uint8(c.Strategy))
	}
	if c.Strategy == Linear && c.Step <= 0 {
		return fmt.Errorf("%w: linear step %d must be positive", ErrInvalidConfig, c.Step)
	}
	return nil
}

// ParseConfig decodes a TOML document on top of DefaultConfig and validates
// the result. Keys that do not map to a Config field are an error.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return finishConfig(cfg, md)
}

// LoadConfig is ParseConfig for a file on disk.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: load %s: %v", ErrInvalidConfig, path, err)
	}
	return finishConfig(cfg, md)
}

func finishConfig(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
