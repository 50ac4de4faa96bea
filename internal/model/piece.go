package model

// PieceType identifies one of the seven tetromino shapes. The zero value is
// invalid; valid types start at 1 so the value doubles as the cell tag
// written into the board when a piece locks.
type PieceType int

const (
	PieceI PieceType = iota + 1
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceL
	PieceJ
)

// PieceTypeCount is the number of shapes in the catalog.
const PieceTypeCount = 7

// pieceShapes holds the canonical (unrotated) occupancy matrix for each
// shape. Matrices are trimmed to their bounding box; rotation is derived,
// not stored.
var pieceShapes = map[PieceType][][]int{
	PieceI: {
		{1, 1, 1, 1},
	},
	PieceO: {
		{1, 1},
		{1, 1},
	},
	PieceT: {
		{0, 1, 0},
		{1, 1, 1},
	},
	PieceS: {
		{0, 1, 1},
		{1, 1, 0},
	},
	PieceZ: {
		{1, 1, 0},
		{0, 1, 1},
	},
	PieceL: {
		{1, 0},
		{1, 0},
		{1, 1},
	},
	PieceJ: {
		{0, 1},
		{0, 1},
		{1, 1},
	},
}

var pieceNames = map[PieceType]string{
	PieceI: "I",
	PieceO: "O",
	PieceT: "T",
	PieceS: "S",
	PieceZ: "Z",
	PieceL: "L",
	PieceJ: "J",
}

// String returns the one-letter name of the piece type
func (t PieceType) String() string {
	if name, ok := pieceNames[t]; ok {
		return name
	}
	return "?"
}

// Valid returns true if the type is one of the seven catalog shapes
func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceJ
}

// PieceTypes returns all catalog types in canonical order
func PieceTypes() []PieceType {
	return []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceL, PieceJ}
}

// ShapeFor returns a copy of the canonical matrix for the given type,
// or nil for an invalid type
func ShapeFor(t PieceType) [][]int {
	shape, ok := pieceShapes[t]
	if !ok {
		return nil
	}
	return copyShape(shape)
}

// Piece is a falling tetromino: a shape matrix in its current rotation plus
// the board-relative offset of the matrix's top-left cell. Y may be negative
// while the piece is partially above the visible board. Movement and
// rotation produce new Piece values; a Piece is never mutated in place.
type Piece struct {
	Type  PieceType `json:"type"`
	Shape [][]int   `json:"shape"`
	X     int       `json:"x"`
	Y     int       `json:"y"`
}

// NewPiece creates a piece of the given type in its canonical rotation at
// the origin. Returns nil for an invalid type.
func NewPiece(t PieceType) *Piece {
	shape := ShapeFor(t)
	if shape == nil {
		return nil
	}
	return &Piece{Type: t, Shape: shape}
}

// Clone returns a deep copy of the piece
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	return &Piece{
		Type:  p.Type,
		Shape: copyShape(p.Shape),
		X:     p.X,
		Y:     p.Y,
	}
}

// Width returns the width of the shape matrix
func (p *Piece) Width() int {
	if len(p.Shape) == 0 {
		return 0
	}
	return len(p.Shape[0])
}

// Height returns the height of the shape matrix
func (p *Piece) Height() int {
	return len(p.Shape)
}

// Cells returns the board coordinates of every occupied cell
func (p *Piece) Cells() []Position {
	cells := make([]Position, 0, 4)
	for row := range p.Shape {
		for col, v := range p.Shape[row] {
			if v != 0 {
				cells = append(cells, Position{X: p.X + col, Y: p.Y + row})
			}
		}
	}
	return cells
}

// Valid returns true if the piece has a known type and a non-empty
// rectangular shape matrix
func (p *Piece) Valid() bool {
	if p == nil || !p.Type.Valid() || len(p.Shape) == 0 {
		return false
	}
	width := len(p.Shape[0])
	if width == 0 {
		return false
	}
	for _, row := range p.Shape {
		if len(row) != width {
			return false
		}
	}
	return true
}

// Position identifies a cell on the board
type Position struct {
	X int `json:"x"` // column, 0-indexed from left
	Y int `json:"y"` // row, 0-indexed from top
}

func copyShape(shape [][]int) [][]int {
	out := make([][]int, len(shape))
	for i, row := range shape {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}
