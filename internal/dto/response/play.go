package response

import (
	"theater-booking/internal/data/entity"
	"theater-booking/internal/playstats"
)

type PlayResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Fee          float64 `json:"fee"`
	Price        float64 `json:"price"`
	TotalAccents int     `json:"total_accents"`
}

type PlayDetailResponse struct {
	PlayResponse
	AmountOfAvailableAccents int     `json:"amount_of_available_accents"`
	Revenue                  float64 `json:"revenue"`
	TotalFee                 float64 `json:"total_fee"`
}

func PlayToResponse(play *entity.Play) PlayResponse {
	return PlayResponse{
		ID:           play.ID.String(),
		Name:         play.Name,
		Fee:          play.Fee,
		Price:        play.Price,
		TotalAccents: play.TotalAccents,
	}
}

// PlayToDetailResponse adds the metrics derived from the current reservation count
func PlayToDetailResponse(play *entity.Play, reservations int) PlayDetailResponse {
	summary := playstats.Compute(play, reservations)

	return PlayDetailResponse{
		PlayResponse:             PlayToResponse(play),
		AmountOfAvailableAccents: summary.AvailableSeats,
		Revenue:                  summary.Revenue,
		TotalFee:                 summary.TotalFee,
	}
}
