/*
Package probemap provides an in-memory open-addressing hash map from string
keys to *Point values, with a choice of collision resolution strategy.

Basic usage:

	import "github.com/theflywheel/probemap"

	cfg := probemap.DefaultConfig()
	cfg.Strategy = probemap.DoubleHash

	m, err := probemap.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := m.Put("origin", &probemap.Point{X: 0, Y: 0}); err != nil {
		log.Fatal(err)
	}

	if p, ok := m.GetSafe("origin"); ok {
		fmt.Println(p.X, p.Y)
	}

Features:

  - Linear probing with a configurable step, quadratic (triangular) probing
    and double hashing, selected once through Config
  - Tombstone deletion: removed slots are reused by later inserts and never
    cut a probe sequence short
  - Automatic doubling when size/capacity exceeds the load factor
    (default 0.75); tombstones are discarded on every resize
  - xxhash for the primary hash and FNV-1a for the double-hash increment,
    both replaceable with WithHasher and WithSecondaryHasher
  - Configs can be read from TOML with LoadConfig and ParseConfig
  - Resize and failure reporting through a zap logger (WithLogger)

Implementation Details:

The table is a slice of slots, each tagged empty, occupied or tombstone.
Every strategy probes at most capacity slots for a key. An insert takes the
first slot on the sequence that is not occupied; a lookup walks the sequence
until it finds the key or reaches an empty slot.

Linear probing only reaches every slot when the step is coprime to the
capacity. Quadratic tables keep a power-of-two capacity, which lets the
triangular sequence reach every slot. The double-hash increment is forced
coprime to the capacity.

Put never overwrites: storing a key that is already present is a no-op. A
Map is not safe for concurrent use.
*/
package probemap
