package probemap

import "go.uber.org/zap"

// Option customises a Map built by New.
type Option func(*Map)

// WithLogger sets the logger used for resize and failure reports. A nil
// logger keeps the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Map) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithHasher replaces the primary hash, which picks the first probe slot.
func WithHasher(h Hasher) Option {
	return func(m *Map) {
		if h != nil {
			m.hash = h
		}
	}
}

// WithSecondaryHasher replaces the hash that derives the DoubleHash
// increment. Other strategies never call it.
func WithSecondaryHasher(h Hasher) Option {
	return func(m *Map) {
		if h != nil {
			m.hash2 = h
		}
	}
}
