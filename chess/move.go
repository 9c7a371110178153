package chess

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidMove is returned for move text that is not long algebraic.
var ErrInvalidMove = errors.New("invalid move format")

// Move is an origin and destination, with the promotion kind for pawns
// reaching their last rank (None otherwise).
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// String renders long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if letter, ok := kindLetters[m.Promotion]; ok && m.Promotion.promotable() {
		s += string(rune(letter + 'a' - 'A'))
	}
	return s
}

// ParseMove reads long algebraic notation.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%w %d %s", ErrInvalidMove, len(text), text)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w %s: %v", ErrInvalidMove, text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w %s: %v", ErrInvalidMove, text, err)
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = KindFromLetter(text[4])
		if !m.Promotion.promotable() {
			return Move{}, fmt.Errorf("%w %s: bad promotion %q", ErrInvalidMove, text, text[4])
		}
	}
	return m, nil
}

// Scan implements fmt.Scanner.
func (m *Move) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	parsed, err := ParseMove(string(token))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *Move) UnmarshalJSON(bytes []byte) error {
	var text string
	if err := json.Unmarshal(bytes, &text); err != nil {
		return err
	}
	_, err := fmt.Sscan(text, m)
	return err
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
