package probemap

import (
	"fmt"

	"go.uber.org/zap"
)

// Map is an open-addressing hash map from string keys to *Point values.
// It is not safe for concurrent use.
type Map struct {
	slots      []slot
	size       int
	tombstones int
	resizes    int
	loadFactor float64
	prober     prober
	hash       Hasher
	hash2      Hasher
	logger     *zap.Logger
}

// Stats is a snapshot of a Map's bookkeeping.
type Stats struct {
	Size       int
	Capacity   int
	Tombstones int
	Resizes    int
	LoadFactor float64
	Strategy   Strategy
}

// New validates cfg and allocates an empty table.
func New(cfg Config, opts ...Option) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	capacity := cfg.InitialCapacity
	if cfg.Strategy == Quadratic {
		capacity = nextPowerOfTwo(capacity)
	}

	m := &Map{
		slots:      make([]slot, capacity),
		loadFactor: cfg.LoadFactor,
		prober:     prober{strategy: cfg.Strategy, step: cfg.Step},
		hash:       hashKey,
		hash2:      hashKey2,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Len returns the number of live entries.
func (m *Map) Len() int {
	return m.size
}

// Cap returns the number of slots in the table.
func (m *Map) Cap() int {
	return len(m.slots)
}

// Stats returns the current size, capacity, tombstone and resize counts.
func (m *Map) Stats() Stats {
	return Stats{
		Size:       m.size,
		Capacity:   len(m.slots),
		Tombstones: m.tombstones,
		Resizes:    m.resizes,
		LoadFactor: m.loadFactor,
		Strategy:   m.prober.strategy,
	}
}

// Put stores value under key. A key that is already present keeps its
// original value. The table doubles as soon as the insert pushes the load
// above the configured load factor.
//
// An error wrapping ErrNoSlotAvailable means nothing was stored. An error
// wrapping ErrGrowFailed means the entry was stored but the table could not
// grow afterwards.
func (m *Map) Put(key string, value *Point) error {
	if m.Contains(key) {
		return nil
	}

	// Only reachable with a load factor of 1: no slot left to probe for.
	if m.size == len(m.slots) {
		if err := m.resize(2 * len(m.slots)); err != nil {
			return err
		}
	}

	h1, h2 := m.hashes(key)
	idx, ok := m.prober.indexForPutting(m.slots, h1, h2)
	if !ok {
		m.logger.Error("no slot available",
			zap.String("key", key),
			zap.Int("capacity", len(m.slots)),
			zap.Int("size", m.size),
			zap.Stringer("strategy", m.prober.strategy))
		return fmt.Errorf("put %q into %d slots: %w", key, len(m.slots), ErrNoSlotAvailable)
	}

	if m.slots[idx].state == slotTombstone {
		m.tombstones--
	}
	m.slots[idx] = slot{state: slotOccupied, key: key, value: value}
	m.size++

	for m.overloaded() {
		if err := m.resize(2 * len(m.slots)); err != nil {
			return fmt.Errorf("grow after put %q: %w (%v)", key, ErrGrowFailed, err)
		}
	}
	return nil
}

// Get returns the value stored under key, or nil.
func (m *Map) Get(key string) *Point {
	p, _ := m.GetSafe(key)
	return p
}

// GetSafe is Get with an explicit presence flag.
func (m *Map) GetSafe(key string) (*Point, bool) {
	idx, ok := m.find(key)
	if !ok {
		return nil, false
	}
	return m.slots[idx].value, true
}

// GetOrElse returns the value stored under key, or def when key is absent.
func (m *Map) GetOrElse(key string, def *Point) *Point {
	if p, ok := m.GetSafe(key); ok {
		return p
	}
	return def
}

// Remove deletes key and returns the value it held. The slot becomes a
// tombstone until the next resize.
func (m *Map) Remove(key string) (*Point, bool) {
	idx, ok := m.find(key)
	if !ok {
		return nil, false
	}
	removed := m.slots[idx].value
	m.slots[idx] = slot{state: slotTombstone}
	m.size--
	m.tombstones++
	return removed, true
}

// Contains reports whether key is stored in the map.
func (m *Map) Contains(key string) bool {
	_, ok := m.find(key)
	return ok
}

func (m *Map) find(key string) (int, bool) {
	h1, h2 := m.hashes(key)
	return m.prober.search(m.slots, key, h1, h2)
}

func (m *Map) hashes(key string) (uint64, uint64) {
	h1 := m.hash(key)
	if m.prober.strategy != DoubleHash {
		return h1, 0
	}
	return h1, m.hash2(key)
}

func (m *Map) overloaded() bool {
	return float64(m.size)/float64(len(m.slots)) > m.loadFactor
}

// resize moves every live entry into a fresh table of newCapacity slots.
// Tombstones are not carried over. The map is left untouched if an entry
// cannot be placed.
func (m *Map) resize(newCapacity int) error {
	entries := make([]slot, 0, m.size)
	for _, sl := range m.slots {
		if sl.state == slotOccupied {
			entries = append(entries, sl)
		}
	}

	fresh := make([]slot, newCapacity)
	for _, e := range entries {
		h1, h2 := m.hashes(e.key)
		idx, ok := m.prober.indexForPutting(fresh, h1, h2)
		if !ok {
			m.logger.Error("resize failed",
				zap.String("key", e.key),
				zap.Int("old_capacity", len(m.slots)),
				zap.Int("new_capacity", newCapacity),
				zap.Stringer("strategy", m.prober.strategy))
			return fmt.Errorf("resize to %d slots: replay %q: %w", newCapacity, e.key, ErrNoSlotAvailable)
		}
		fresh[idx] = e
	}

	m.logger.Debug("resized table",
		zap.Int("old_capacity", len(m.slots)),
		zap.Int("new_capacity", newCapacity),
		zap.Int("size", len(entries)),
		zap.Int("dropped_tombstones", m.tombstones),
		zap.Stringer("strategy", m.prober.strategy))

	m.slots = fresh
	m.size = len(entries)
	m.tombstones = 0
	m.resizes++
	return nil
}
