package chess

// Color is one of the two sides.
type Color uint8

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// forward is the rank delta of a pawn advance.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// homeRank is the back rank index for the color.
func (c Color) homeRank() int {
	if c == White {
		return 7
	}
	return 0
}

// promotionRank is the farthest rank for the color's pawns.
func (c Color) promotionRank() int {
	return c.Opponent().homeRank()
}

// Kind is the piece variant. None marks an empty cell.
type Kind uint8

const (
	None Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

var kindNames = [...]string{"None", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

var kindLetters = map[Kind]byte{
	Pawn:   'P',
	Rook:   'R',
	Knight: 'N',
	Bishop: 'B',
	Queen:  'Q',
	King:   'K',
}

var letterKinds = map[byte]Kind{
	'p': Pawn,
	'r': Rook,
	'n': Knight,
	'b': Bishop,
	'q': Queen,
	'k': King,
}

var whiteGlyphs = map[Kind]rune{
	Bishop: '♗',
	King:   '♔',
	Knight: '♘',
	Pawn:   '♙',
	Queen:  '♕',
	Rook:   '♖',
}

var blackGlyphs = map[Kind]rune{
	Bishop: '♝',
	King:   '♚',
	Knight: '♞',
	Pawn:   '♟',
	Queen:  '♛',
	Rook:   '♜',
}

// KindFromLetter maps a piece letter of either case to its kind, or None.
func KindFromLetter(letter byte) Kind {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letterKinds[letter]
}

// promotable reports whether a pawn may become this kind.
func (k Kind) promotable() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// Piece occupies one board cell. The zero value is an empty cell.
type Piece struct {
	Kind  Kind
	Color Color
	Moved bool
}

// NewPiece returns an unmoved piece.
func NewPiece(kind Kind, color Color) Piece {
	return Piece{Kind: kind, Color: color}
}

// Empty reports whether the cell holds no piece.
func (p Piece) Empty() bool {
	return p.Kind == None
}

// Is reports whether p is a piece of the given kind and color.
func (p Piece) Is(kind Kind, color Color) bool {
	return p.Kind == kind && p.Color == color
}

// Letter is the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter, ok := kindLetters[p.Kind]
	if !ok {
		return 0
	}
	if p.Color == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Glyph is the unicode chess symbol for the piece, or '·' when empty.
func (p Piece) Glyph() rune {
	if p.Empty() {
		return '·'
	}
	if p.Color == White {
		return whiteGlyphs[p.Kind]
	}
	return blackGlyphs[p.Kind]
}

func (p Piece) String() string {
	if p.Empty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}
