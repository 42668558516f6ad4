package models

type Car struct {
	ID              int64  `json:"id"`
	OwnerID         int64  `json:"owner_id"`
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	Year            int    `json:"year,omitempty"`
	Category        string `json:"category,omitempty"`
	FuelType        string `json:"fuel_type,omitempty"`
	Transmission    string `json:"transmission,omitempty"`
	SeatingCapacity int    `json:"seating_capacity,omitempty"`
	Location        string `json:"location,omitempty"`
	PricePerDay     int64  `json:"price_per_day"`
	Available       bool   `json:"available"`
	CreatedAt       string `json:"created_at,omitempty"`
}
