package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxSeatColumns bounds theater width so every seat renders as
// <row><single letter>, e.g. "7C". Rows are 1-based numbers, columns
// 1-based letters starting at A.
const MaxSeatColumns = 26

var ErrBadSeatLabel = errors.New("bad seat label")

// SeatID is the canonical seat coordinate. The same encoding is used
// when the grid is generated, when a booking request names a seat, and
// when seats are rendered back to clients.
type SeatID struct {
	Row int
	Col int
}

func (s SeatID) String() string {
	return strconv.Itoa(s.Row) + string(rune('A'+s.Col-1))
}

// InBounds reports whether the seat exists in a rows x cols grid.
func (s SeatID) InBounds(rows, cols int) bool {
	return s.Row >= 1 && s.Row <= rows && s.Col >= 1 && s.Col <= cols
}

// ParseSeatID parses a label like "1A" or "12F". Only the canonical
// rendering is accepted, so Parse and String stay strict inverses
// ("01A" and "+1A" are rejected, not aliased to "1A"). Bounds against a
// concrete grid are the caller's job.
func ParseSeatID(label string) (SeatID, error) {
	if len(label) < 2 {
		return SeatID{}, fmt.Errorf("%w: %q", ErrBadSeatLabel, label)
	}

	last := label[len(label)-1]
	if last < 'A' || last > 'Z' {
		return SeatID{}, fmt.Errorf("%w: %q", ErrBadSeatLabel, label)
	}

	row, err := strconv.Atoi(label[:len(label)-1])
	if err != nil || row < 1 {
		return SeatID{}, fmt.Errorf("%w: %q", ErrBadSeatLabel, label)
	}

	id := SeatID{Row: row, Col: int(last-'A') + 1}
	if id.String() != label {
		return SeatID{}, fmt.Errorf("%w: %q", ErrBadSeatLabel, label)
	}

	return id, nil
}

// AssembleSeatMatrix arranges flat seat records into a rows x cols grid.
// Missing cells are filled as available so a partially scanned set still
// yields a full-shaped matrix.
func AssembleSeatMatrix(rows, cols int, seats []Seat) SeatMatrix {
	m := make(SeatMatrix, rows)
	for r := range m {
		m[r] = make([]Seat, cols)
		for c := range m[r] {
			id := SeatID{Row: r + 1, Col: c + 1}
			m[r][c] = Seat{
				Label:  id.String(),
				Row:    r + 1,
				Col:    c + 1,
				Status: SeatAvailable,
			}
		}
	}

	for _, s := range seats {
		if s.Row < 1 || s.Row > rows || s.Col < 1 || s.Col > cols {
			continue
		}
		m[s.Row-1][s.Col-1] = s
	}

	return m
}
