// Package draft holds the in-progress booking input across the two checkout
// steps, gates the step transitions with validation, and produces the
// finalized booking-creation request on submission.
package draft

import (
	"strings"
	"time"

	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/utils"
)

// Step identifies the active checkout step.
type Step int

const (
	StepTripAndIdentity Step = iota + 1
	StepPayment
)

// Renter captures the identity/document fields collected in step one.
type Renter struct {
	Name          string
	Phone         string
	Address       string
	NationalID    string
	LicenseNumber string
}

// CardDetails is only ever kept inside the draft. The CVV is required to
// validate a card submission but is dropped before the creation request is
// built and is never persisted anywhere.
type CardDetails struct {
	HolderName string
	Number     string
	Expiry     string
	CVV        string
}

// Draft is a single in-progress booking attempt. It is created on entry to
// the booking flow and discarded after the server confirms creation.
type Draft struct {
	step Step

	CarID      int64
	PickupDate time.Time
	ReturnDate time.Time
	Renter     Renter

	DriverRequested bool
	DriverPhone     string
	DriverAddress   string
	assignedDriver  *Driver

	PaymentMethod string
	Card          CardDetails
	BankCode      string

	// Flat per-day driver fee used for quotes; defaults to the package
	// constant, overridable from configuration.
	DriverDayRate int64
}

// New starts a fresh draft at the trip-and-identity step.
func New(carID int64) *Draft {
	return &Draft{
		step:          StepTripAndIdentity,
		CarID:         carID,
		PaymentMethod: models.PaymentCash,
		DriverDayRate: DefaultDriverDayRate,
	}
}

// Step reports the current checkout step.
func (d *Draft) Step() Step {
	return d.step
}

// AssignedDriver returns the roster driver picked when the driver flag was
// last enabled, or nil.
func (d *Draft) AssignedDriver() *Driver {
	return d.assignedDriver
}

// SetDriverRequested toggles the driver flag. Enabling it assigns one roster
// driver at random and copies the contact fields into the draft so they end
// up on the persisted booking; disabling clears the assignment.
func (d *Draft) SetDriverRequested(v bool) {
	d.DriverRequested = v
	if !v {
		d.assignedDriver = nil
		d.DriverPhone = ""
		d.DriverAddress = ""
		return
	}
	picked := PickDriver()
	d.assignedDriver = &picked
	d.DriverPhone = picked.Phone
	d.DriverAddress = picked.Address
}

// AdvanceToPayment validates the trip and identity fields and moves the
// draft to the payment step. On failure the draft stays where it is and the
// first failing constraint is reported. Driver contact fields are checked
// later, at Submit.
func (d *Draft) AdvanceToPayment() error {
	if d.PickupDate.IsZero() {
		return domain.ValidationError{Field: "pickup_date", Msg: "pickup date is required"}
	}
	if d.ReturnDate.IsZero() {
		return domain.ValidationError{Field: "return_date", Msg: "return date is required"}
	}
	if !d.ReturnDate.After(d.PickupDate) {
		return domain.ValidationError{Field: "return_date", Msg: "return date must be after pickup date"}
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", d.Renter.Name},
		{"phone", d.Renter.Phone},
		{"address", d.Renter.Address},
		{"national_id_number", d.Renter.NationalID},
		{"license_number", d.Renter.LicenseNumber},
	} {
		if strings.TrimSpace(f.value) == "" {
			return domain.ValidationError{Field: f.name, Msg: "is required"}
		}
	}

	d.step = StepPayment
	return nil
}

// Back returns from the payment step to trip and identity without clearing
// any field.
func (d *Draft) Back() {
	d.step = StepTripAndIdentity
}

// Submit validates the payment fields (first failure wins) plus the lazily
// checked driver contact, and emits the finalized creation request. The
// draft state does not move on failure; the caller discards the draft only
// after the server reports success.
func (d *Draft) Submit() (models.CreateBookingRequest, error) {
	var req models.CreateBookingRequest

	if d.step != StepPayment {
		return req, domain.ValidationError{Field: "step", Msg: "complete booking details first"}
	}
	if !models.ValidPaymentMethod(d.PaymentMethod) {
		return req, domain.ValidationError{Field: "payment_method", Msg: "unknown payment method"}
	}

	switch d.PaymentMethod {
	case models.PaymentCard:
		for _, f := range []struct {
			name  string
			value string
		}{
			{"card_name", d.Card.HolderName},
			{"card_number", d.Card.Number},
			{"card_expiry", d.Card.Expiry},
			{"card_cvv", d.Card.CVV},
		} {
			if strings.TrimSpace(f.value) == "" {
				return req, domain.ValidationError{Field: f.name, Msg: "please fill all card details"}
			}
		}
	case models.PaymentNetBanking:
		if strings.TrimSpace(d.BankCode) == "" {
			return req, domain.ValidationError{Field: "bank_code", Msg: "please select a bank"}
		}
	}

	if d.DriverRequested {
		if strings.TrimSpace(d.DriverPhone) == "" || strings.TrimSpace(d.DriverAddress) == "" {
			return req, domain.ValidationError{Field: "driver_contact", Msg: "driver contact is required"}
		}
	}

	req = models.CreateBookingRequest{
		CarID:         d.CarID,
		PickupDate:    utils.FormatDate(d.PickupDate),
		ReturnDate:    utils.FormatDate(d.ReturnDate),
		Name:          strings.TrimSpace(d.Renter.Name),
		Phone:         strings.TrimSpace(d.Renter.Phone),
		Address:       strings.TrimSpace(d.Renter.Address),
		NationalID:    strings.TrimSpace(d.Renter.NationalID),
		LicenseNumber: strings.TrimSpace(d.Renter.LicenseNumber),
		DriverNeeded:  d.DriverRequested,
		PaymentMethod: d.PaymentMethod,
	}

	if d.DriverRequested {
		if d.assignedDriver != nil {
			req.DriverName = d.assignedDriver.Name
		}
		req.DriverPhone = strings.TrimSpace(d.DriverPhone)
		req.DriverAddress = strings.TrimSpace(d.DriverAddress)
	}

	switch d.PaymentMethod {
	case models.PaymentCard:
		// CVV intentionally left behind.
		req.CardName = strings.TrimSpace(d.Card.HolderName)
		req.CardNumber = strings.TrimSpace(d.Card.Number)
		req.CardExpiry = strings.TrimSpace(d.Card.Expiry)
	case models.PaymentNetBanking:
		req.BankCode = strings.TrimSpace(d.BankCode)
	}

	return req, nil
}

// Quote recomputes the price breakdown from the current draft fields and the
// referenced car's daily rate.
func (d *Draft) Quote(pricePerDay int64) Quote {
	rate := d.DriverDayRate
	if rate == 0 {
		rate = DefaultDriverDayRate
	}
	return Compute(d.PickupDate, d.ReturnDate, pricePerDay, d.DriverRequested, rate)
}
