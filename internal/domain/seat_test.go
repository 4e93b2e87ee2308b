package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeatID(t *testing.T) {
	tests := []struct {
		label string
		want  SeatID
	}{
		{"1A", SeatID{Row: 1, Col: 1}},
		{"1H", SeatID{Row: 1, Col: 8}},
		{"10H", SeatID{Row: 10, Col: 8}},
		{"7C", SeatID{Row: 7, Col: 3}},
		{"100Z", SeatID{Row: 100, Col: 26}},
	}

	for _, tt := range tests {
		got, err := ParseSeatID(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}

func TestParseSeatID_Invalid(t *testing.T) {
	for _, label := range []string{"", "A", "1", "A1", "0A", "-1A", "1a", "1 A", "1AA1", "+1A", "01A", " 1A"} {
		_, err := ParseSeatID(label)
		assert.ErrorIs(t, err, ErrBadSeatLabel, label)
	}
}

func TestSeatID_RoundTrip(t *testing.T) {
	for row := 1; row <= 12; row++ {
		for col := 1; col <= MaxSeatColumns; col++ {
			id := SeatID{Row: row, Col: col}
			parsed, err := ParseSeatID(id.String())
			require.NoError(t, err, id.String())
			assert.Equal(t, id, parsed)
		}
	}
}

func TestSeatID_InBounds(t *testing.T) {
	assert.True(t, SeatID{Row: 1, Col: 1}.InBounds(2, 2))
	assert.True(t, SeatID{Row: 2, Col: 2}.InBounds(2, 2))
	assert.False(t, SeatID{Row: 3, Col: 1}.InBounds(2, 2))
	assert.False(t, SeatID{Row: 1, Col: 3}.InBounds(2, 2))

	// "9Z" on a 2x2 grid parses fine but is out of bounds.
	id, err := ParseSeatID("9Z")
	require.NoError(t, err)
	assert.False(t, id.InBounds(2, 2))
}

func TestAssembleSeatMatrix(t *testing.T) {
	m := AssembleSeatMatrix(2, 2, nil)

	require.Len(t, m, 2)
	total := 0
	for r, rowSeats := range m {
		require.Len(t, rowSeats, 2)
		for c, s := range rowSeats {
			total++
			assert.Equal(t, SeatAvailable, s.Status)
			assert.Equal(t, r+1, s.Row)
			assert.Equal(t, c+1, s.Col)
			assert.Equal(t, SeatID{Row: r + 1, Col: c + 1}.String(), s.Label)
		}
	}
	assert.Equal(t, 4, total)
}

func TestAssembleSeatMatrix_PlacesBookedSeats(t *testing.T) {
	seats := []Seat{
		{Label: "1A", Row: 1, Col: 1, Status: SeatBooked, BookedBy: "dana"},
	}

	m := AssembleSeatMatrix(2, 2, seats)

	assert.Equal(t, SeatBooked, m[0][0].Status)
	assert.Equal(t, "dana", m[0][0].BookedBy)
	assert.Equal(t, SeatAvailable, m[0][1].Status)
	assert.Equal(t, SeatAvailable, m[1][0].Status)
}
