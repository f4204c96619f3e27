package model

// IsLegal reports whether a piece of the given kind standing on from may move
// to to. Only geometry is checked: occupancy, paths and turns are ignored,
// and a move to the square the piece already stands on is always legal.
func IsLegal(kind PieceType, from, to string) bool {
	dest, ok := ToNumeric(to)
	if !ok {
		return false
	}
	if kind == Base {
		return true
	}

	origin, ok := ToNumeric(from)
	if !ok {
		return false
	}
	dx := abs(origin.X - dest.X)
	dy := abs(origin.Y - dest.Y)

	switch kind {
	case Rook:
		return isStraight(dx, dy)
	case Bishop:
		return isDiagonal(dx, dy)
	case King:
		return dx <= 1 && dy <= 1
	case Queen:
		return isStraight(dx, dy) || isDiagonal(dx, dy)
	}
	return false
}

func isStraight(dx, dy int) bool {
	return dx == 0 || dy == 0
}

func isDiagonal(dx, dy int) bool {
	return dx == dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
