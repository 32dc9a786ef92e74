package core

// DyadicShapes lists the partitions of m cells obtained by halving the
// column count and doubling the row count until no columns remain:
//
//	m×1, m/2×2, m/4×4, …, 1×m
//
// For a power-of-two m = 2^p this is exactly the family 2^a×2^(p−a),
// a = p..0, i.e. every elementary-interval shape of a (0,2)-sequence.
// For other m the integer halving still terminates; the products
// Cols·Rows never exceed m. Returns nil for m < 1.
//
// Complexity: O(log m) time and space.
func DyadicShapes(m int) []Shape {
	if m < 1 {
		return nil
	}

	var (
		shapes []Shape
		cols   int
		rows   int
	)
	cols, rows = m, 1
	for cols != 0 {
		shapes = append(shapes, Shape{Cols: cols, Rows: rows})
		cols /= 2
		rows *= 2
	}

	return shapes
}

// IsPowerOfTwo reports whether m is a positive power of two.
func IsPowerOfTwo(m int) bool {
	return m > 0 && m&(m-1) == 0
}
