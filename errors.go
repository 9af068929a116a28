package probemap

import "errors"

var (
	// ErrInvalidConfig is returned for a Config that New refuses to build.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrNoSlotAvailable is returned by Put when every probe attempt for a
	// key landed on a live entry. Put leaves the map unchanged in that case.
	ErrNoSlotAvailable = errors.New("no slot available")

	// ErrGrowFailed is returned by Put when the entry was stored but the
	// resize that followed could not place every entry in the larger table.
	// The map keeps its previous table.
	ErrGrowFailed = errors.New("grow failed")
)
