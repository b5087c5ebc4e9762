package app

import (
	"fmt"

	"rook/internal/domain"
)

// ResolveBids returns the seat with the highest bid. Seats are visited in
// order and only a strictly greater bid takes over, so ties stay with the
// earlier seat.
func ResolveBids(bids [domain.NumSeats]int) (domain.Seat, int, error) {
	best, seat := 0, domain.Seat(-1)
	for i, b := range bids {
		if b > best {
			best, seat = b, domain.Seat(i)
		}
	}
	if seat < 0 {
		return 0, 0, fmt.Errorf("%w: no seat bid", ErrNoBid)
	}
	return seat, best, nil
}
