package models

// DashboardSummary is derived per request from the owner's booking set.
// It is never persisted.
type DashboardSummary struct {
	TotalCars         int       `json:"total_cars"`
	TotalBookings     int       `json:"total_bookings"`
	PendingBookings   int       `json:"pending_bookings"`
	ConfirmedBookings int       `json:"confirmed_bookings"`
	RecentBookings    []Booking `json:"recent_bookings"`
	MonthlyRevenue    int64     `json:"monthly_revenue"`
}
