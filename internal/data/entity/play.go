package entity

type Play struct {
	Base
	Name         string  `db:"name"`
	Fee          float64 `db:"fee"`
	Price        float64 `db:"price"`
	TotalAccents int     `db:"total_accents"`
}
