package models

// Payment methods accepted at checkout. Only metadata is recorded; no
// transaction is executed and the card security code is never stored.
const (
	PaymentCash       = "cash"
	PaymentUPI        = "upi"
	PaymentCard       = "card"
	PaymentNetBanking = "netbanking"
)

// Booking statuses. New bookings always start as pending; only the car's
// owner moves them onward.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentNetBanking:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID          int64  `json:"id"`
	BookingCode string `json:"booking_code"`
	CarID       int64  `json:"car_id"`
	UserID      int64  `json:"user_id"`
	OwnerID     int64  `json:"owner_id"`

	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`

	// Renter identity captured during checkout.
	RenterName    string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	NationalID    string `json:"national_id_number"`
	LicenseNumber string `json:"license_number"`

	DriverNeeded  bool   `json:"driver_needed"`
	DriverName    string `json:"driver_name,omitempty"`
	DriverPhone   string `json:"driver_phone,omitempty"`
	DriverAddress string `json:"driver_address,omitempty"`

	PaymentMethod string `json:"payment_method"`
	CardName      string `json:"card_name,omitempty"`
	CardNumber    string `json:"card_number,omitempty"`
	CardExpiry    string `json:"card_expiry,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`

	Status string `json:"status"`
	Price  int64  `json:"price"`

	// Joined car display fields for listings.
	CarBrand string `json:"car_brand,omitempty"`
	CarModel string `json:"car_model,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CreateBookingRequest is the finalized payload the booking draft emits on
// submission. It deliberately has no field for a card security code.
type CreateBookingRequest struct {
	CarID      int64  `json:"car_id"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`

	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	NationalID    string `json:"national_id_number"`
	LicenseNumber string `json:"license_number"`

	DriverNeeded  bool   `json:"driver_needed"`
	DriverName    string `json:"driver_name,omitempty"`
	DriverPhone   string `json:"driver_phone,omitempty"`
	DriverAddress string `json:"driver_address,omitempty"`

	PaymentMethod string `json:"payment_method"`
	CardName      string `json:"card_name,omitempty"`
	CardNumber    string `json:"card_number,omitempty"`
	CardExpiry    string `json:"card_expiry,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
}
