package probemap

// Point is the payload stored against a key. The map never looks inside it:
// values are kept and returned by pointer, so two lookups of the same key
// yield the same *Point.
type Point struct {
	X, Y float64
}
