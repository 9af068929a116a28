package probemap

import (
	"fmt"
	"math/bits"
	"strings"
)

// Strategy selects how collisions are resolved.
type Strategy uint8

const (
	// Linear probes hash, hash+step, hash+2*step, ...
	Linear Strategy = iota
	// Quadratic probes hash + (i*i + i)/2 (triangular numbers). Tables using
	// it always have a power-of-two capacity, which makes the sequence visit
	// every slot.
	Quadratic
	// DoubleHash probes hash + i*inc where inc is derived from a second,
	// independent hash and is always coprime to the capacity.
	DoubleHash
)

func (s Strategy) String() string {
	switch s {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case DoubleHash:
		return "double"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

func (s Strategy) valid() bool {
	return s <= DoubleHash
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: unknown strategy %d", ErrInvalidConfig, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "consistent" and
// "doublehash" are accepted as aliases of "double".
func (s *Strategy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "linear":
		*s = Linear
	case "quadratic":
		*s = Quadratic
	case "double", "doublehash", "consistent":
		*s = DoubleHash
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, text)
	}
	return nil
}

// prober produces probe sequences for one table. It is fixed at
// construction; only the capacity it is handed changes on resize.
type prober struct {
	strategy Strategy
	step     int
}

// probeSeq walks the candidate slots for a single key. It yields at most
// capacity positions.
type probeSeq struct {
	strategy Strategy
	capacity int
	pos      int
	inc      int
	attempt  int
}

func (p prober) begin(h1, h2 uint64, capacity int) probeSeq {
	seq := probeSeq{
		strategy: p.strategy,
		capacity: capacity,
		pos:      int(h1 % uint64(capacity)),
	}
	switch p.strategy {
	case Linear:
		seq.inc = p.step % capacity
	case DoubleHash:
		seq.inc = doubleHashIncrement(h2, capacity)
	}
	return seq
}

// next moves to the following attempt. It reports false once capacity
// attempts have been made.
func (s *probeSeq) next() bool {
	s.attempt++
	if s.attempt >= s.capacity {
		return false
	}
	switch s.strategy {
	case Quadratic:
		// T(i) - T(i-1) == i
		s.pos = (s.pos + s.attempt) % s.capacity
	default:
		s.pos = (s.pos + s.inc) % s.capacity
	}
	return true
}

// indexForPutting returns the first empty or tombstoned slot on the probe
// sequence.
func (p prober) indexForPutting(slots []slot, h1, h2 uint64) (int, bool) {
	seq := p.begin(h1, h2, len(slots))
	for {
		if slots[seq.pos].state != slotOccupied {
			return seq.pos, true
		}
		if !seq.next() {
			return -1, false
		}
	}
}

// search returns the slot holding key. An empty slot ends the search;
// tombstones are skipped.
func (p prober) search(slots []slot, key string, h1, h2 uint64) (int, bool) {
	seq := p.begin(h1, h2, len(slots))
	for {
		sl := &slots[seq.pos]
		switch sl.state {
		case slotEmpty:
			return -1, false
		case slotOccupied:
			if sl.key == key {
				return seq.pos, true
			}
		}
		if !seq.next() {
			return -1, false
		}
	}
}

// doubleHashIncrement maps h2 into [1, capacity) and bumps it until it is
// coprime to capacity. capacity-1 is always coprime, so the loop ends.
func doubleHashIncrement(h2 uint64, capacity int) int {
	if capacity <= 2 {
		return 1
	}
	inc := int(h2%uint64(capacity-1)) + 1
	for gcd(inc, capacity) != 1 {
		inc++
	}
	return inc
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// nextPowerOfTwo rounds n (n >= 1) up to a power of two.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
