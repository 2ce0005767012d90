// Package playstats derives the financial figures of a play from its
// configuration and the number of reservations currently held for it.
//
// Nothing here is stored. Callers pass the live reservation count on every
// read, so the figures cannot go stale.
package playstats

import "theater-booking/internal/data/entity"

type Summary struct {
	AvailableSeats int
	Revenue        float64
	TotalFee       float64
}

// AvailableSeats is the capacity left after n reservations.
// Reservations are not capped by capacity, so the result can be negative.
func AvailableSeats(play *entity.Play, n int) int {
	return play.TotalAccents - n
}

// Revenue is price times the number of reservations, 0 when there are none.
func Revenue(play *entity.Play, n int) float64 {
	if n == 0 {
		return 0
	}
	return play.Price * float64(n)
}

// TotalFee is the operator's share of the revenue.
func TotalFee(play *entity.Play, n int) float64 {
	return Revenue(play, n) * play.Fee
}

func Compute(play *entity.Play, n int) Summary {
	return Summary{
		AvailableSeats: AvailableSeats(play, n),
		Revenue:        Revenue(play, n),
		TotalFee:       TotalFee(play, n),
	}
}
