package draft

import (
	"math"
	"time"
)

// DefaultDriverDayRate is the flat per-day fee for a requested driver,
// in whole currency units. Deployments override it via DRIVER_DAY_RATE.
const DefaultDriverDayRate int64 = 500

// Quote is the price breakdown shown during checkout. It is always derived
// from the current draft fields plus the car's daily rate and never stored
// on its own.
type Quote struct {
	Days       int64 `json:"days"`
	RentalCost int64 `json:"rental_cost"`
	DriverCost int64 `json:"driver_cost"`
	Total      int64 `json:"total"`
}

// RentalDays returns ceil((return - pickup) / 1 day), floored at 1.
// Same-day or inverted selections still count as one rental day; the floor
// is deliberate, not an error path. The count is taken over the calendar
// dates so a DST transition inside the range cannot stretch a day to 25
// hours and inflate the charge.
func RentalDays(pickup, ret time.Time) int64 {
	if pickup.IsZero() || ret.IsZero() {
		return 1
	}
	p := time.Date(pickup.Year(), pickup.Month(), pickup.Day(), 0, 0, 0, 0, time.UTC)
	r := time.Date(ret.Year(), ret.Month(), ret.Day(), 0, 0, 0, 0, time.UTC)
	days := int64(math.Ceil(r.Sub(p).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Compute applies the booking pricing formula. The server uses the same
// function when persisting, so a client-supplied total is never trusted.
func Compute(pickup, ret time.Time, pricePerDay int64, driverNeeded bool, driverDayRate int64) Quote {
	days := RentalDays(pickup, ret)
	q := Quote{
		Days:       days,
		RentalCost: pricePerDay * days,
	}
	if driverNeeded {
		q.DriverCost = driverDayRate * days
	}
	q.Total = q.RentalCost + q.DriverCost
	return q
}
