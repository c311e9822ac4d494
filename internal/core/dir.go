package core

// Dir is one of the eight unit directions a ray can travel.
type Dir uint8

const (
	DirNone Dir = iota
	DirN
	DirE
	DirS
	DirW
	DirNE
	DirSE
	DirSW
	DirNW
)

// OrthogonalDirs lists the four orthogonal directions in ray-casting order.
var OrthogonalDirs = [4]Dir{DirN, DirE, DirS, DirW}

// DiagonalDirs lists the four diagonal directions in ray-casting order.
var DiagonalDirs = [4]Dir{DirNE, DirSE, DirSW, DirNW}

// String returns the compass name of the direction.
func (d Dir) String() string {
	switch d {
	case DirN:
		return "N"
	case DirE:
		return "E"
	case DirS:
		return "S"
	case DirW:
		return "W"
	case DirNE:
		return "NE"
	case DirSE:
		return "SE"
	case DirSW:
		return "SW"
	case DirNW:
		return "NW"
	default:
		return "None"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// North decreases Y, South increases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirN:
		return 0, -1
	case DirE:
		return 1, 0
	case DirS:
		return 0, 1
	case DirW:
		return -1, 0
	case DirNE:
		return 1, -1
	case DirSE:
		return 1, 1
	case DirSW:
		return -1, 1
	case DirNW:
		return -1, -1
	default:
		return 0, 0
	}
}

// IsDiagonal reports whether the direction moves along both axes.
func (d Dir) IsDiagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirN:
		return DirS
	case DirE:
		return DirW
	case DirS:
		return DirN
	case DirW:
		return DirE
	case DirNE:
		return DirSW
	case DirSE:
		return DirNW
	case DirSW:
		return DirNE
	case DirNW:
		return DirSE
	default:
		return DirNone
	}
}
