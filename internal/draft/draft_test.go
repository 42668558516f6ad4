package draft

import (
	"testing"
	"time"

	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func validDraft() *Draft {
	d := New(7)
	d.PickupDate = date("2024-06-01")
	d.ReturnDate = date("2024-06-04")
	d.Renter = Renter{
		Name:          "Arun Mehta",
		Phone:         "+91 90000 11111",
		Address:       "12 Residency Road, Bangalore",
		NationalID:    "123412341234",
		LicenseNumber: "KA05 20230001234",
	}
	return d
}

func TestRentalDaysFlooredAtOne(t *testing.T) {
	cases := []struct {
		name   string
		pickup string
		ret    string
		want   int64
	}{
		{"three days", "2024-06-01", "2024-06-04", 3},
		{"single day", "2024-06-01", "2024-06-02", 1},
		{"same day", "2024-06-01", "2024-06-01", 1},
		{"inverted", "2024-06-04", "2024-06-01", 1},
	}
	for _, tc := range cases {
		if got := RentalDays(date(tc.pickup), date(tc.ret)); got != tc.want {
			t.Errorf("%s: got %d days, want %d", tc.name, got, tc.want)
		}
	}
}

func TestRentalDaysIgnoresDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// Fall back: the range spans 73 wall-clock hours but only 3 dates.
	pickup := time.Date(2024, time.November, 1, 0, 0, 0, 0, loc)
	ret := time.Date(2024, time.November, 4, 0, 0, 0, 0, loc)
	if got := RentalDays(pickup, ret); got != 3 {
		t.Errorf("fall back: got %d days, want 3", got)
	}

	// Spring forward: 71 hours, still 3 dates.
	pickup = time.Date(2024, time.March, 8, 0, 0, 0, 0, loc)
	ret = time.Date(2024, time.March, 11, 0, 0, 0, 0, loc)
	if got := RentalDays(pickup, ret); got != 3 {
		t.Errorf("spring forward: got %d days, want 3", got)
	}
}

func TestAdvanceRejectsBadDateOrder(t *testing.T) {
	d := validDraft()
	d.ReturnDate = d.PickupDate

	err := d.AdvanceToPayment()
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if d.Step() != StepTripAndIdentity {
		t.Fatalf("step moved to %v on failed advance", d.Step())
	}

	d.ReturnDate = d.PickupDate.AddDate(0, 0, -2)
	if err := d.AdvanceToPayment(); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for inverted dates, got %v", err)
	}
}

func TestAdvanceRejectsMissingRenterFields(t *testing.T) {
	d := validDraft()
	d.Renter.LicenseNumber = ""

	if err := d.AdvanceToPayment(); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if d.Step() != StepTripAndIdentity {
		t.Fatalf("step moved on failed advance")
	}
}

func TestAdvanceKeepsFields(t *testing.T) {
	d := validDraft()
	if err := d.AdvanceToPayment(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if d.Step() != StepPayment {
		t.Fatalf("expected payment step, got %v", d.Step())
	}
	if d.Renter.Name != "Arun Mehta" || d.PickupDate.IsZero() {
		t.Fatalf("advance cleared fields")
	}

	d.Back()
	if d.Step() != StepTripAndIdentity {
		t.Fatalf("back did not return to first step")
	}
	if d.Renter.Phone == "" {
		t.Fatalf("back cleared fields")
	}
}

func TestSubmitCardValidation(t *testing.T) {
	d := validDraft()
	if err := d.AdvanceToPayment(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	d.PaymentMethod = models.PaymentCard
	d.Card = CardDetails{HolderName: "ARUN MEHTA", Number: "4111111111111111", Expiry: "12/27"}

	if _, err := d.Submit(); !domain.IsValidation(err) {
		t.Fatalf("expected rejection with empty CVV, got %v", err)
	}
	if d.Step() != StepPayment {
		t.Fatalf("failed submit moved step")
	}

	d.Card.CVV = "123"
	req, err := d.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if req.CardName != "ARUN MEHTA" || req.CardNumber != "4111111111111111" || req.CardExpiry != "12/27" {
		t.Fatalf("card fields not carried: %+v", req)
	}
}

func TestSubmitNetBankingRequiresBank(t *testing.T) {
	d := validDraft()
	if err := d.AdvanceToPayment(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	d.PaymentMethod = models.PaymentNetBanking

	if _, err := d.Submit(); !domain.IsValidation(err) {
		t.Fatalf("expected bank validation error, got %v", err)
	}

	d.BankCode = "hdfc"
	req, err := d.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if req.BankCode != "hdfc" {
		t.Fatalf("bank code not carried: %+v", req)
	}
}

func TestSubmitUPICarriesNoPaymentFields(t *testing.T) {
	d := validDraft()
	if err := d.AdvanceToPayment(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	d.PaymentMethod = models.PaymentUPI
	// Stale card input from switching methods must not leak through.
	d.Card = CardDetails{HolderName: "X", Number: "4111", Expiry: "01/30", CVV: "999"}

	req, err := d.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if req.PaymentMethod != "upi" {
		t.Fatalf("payment method %q, want upi", req.PaymentMethod)
	}
	if req.CardName != "" || req.CardNumber != "" || req.CardExpiry != "" || req.BankCode != "" {
		t.Fatalf("card/bank fields leaked into request: %+v", req)
	}
}

func TestSubmitRequiresPaymentStep(t *testing.T) {
	d := validDraft()
	if _, err := d.Submit(); !domain.IsValidation(err) {
		t.Fatalf("expected step validation error, got %v", err)
	}
}

func TestDriverAssignmentToggle(t *testing.T) {
	d := validDraft()
	d.SetDriverRequested(true)

	if d.AssignedDriver() == nil {
		t.Fatalf("no driver assigned")
	}
	if d.DriverPhone == "" || d.DriverAddress == "" {
		t.Fatalf("driver contact not filled from roster")
	}

	d.SetDriverRequested(false)
	if d.AssignedDriver() != nil || d.DriverPhone != "" || d.DriverAddress != "" {
		t.Fatalf("driver assignment not cleared")
	}
}

func TestSubmitCarriesDriverFieldsOnlyWhenRequested(t *testing.T) {
	d := validDraft()
	d.SetDriverRequested(true)
	assigned := d.AssignedDriver().Name
	if err := d.AdvanceToPayment(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	req, err := d.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !req.DriverNeeded || req.DriverName != assigned || req.DriverPhone == "" {
		t.Fatalf("driver fields missing: %+v", req)
	}

	d2 := validDraft()
	if err := d2.AdvanceToPayment(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	req2, err := d2.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if req2.DriverNeeded || req2.DriverName != "" || req2.DriverPhone != "" || req2.DriverAddress != "" {
		t.Fatalf("driver fields present without request: %+v", req2)
	}
}

func TestQuoteTotals(t *testing.T) {
	d := validDraft() // 2024-06-01 -> 2024-06-04, 3 days

	q := d.Quote(1000)
	if q.Days != 3 || q.RentalCost != 3000 || q.DriverCost != 0 || q.Total != 3000 {
		t.Fatalf("quote without driver: %+v", q)
	}

	d.SetDriverRequested(true)
	q = d.Quote(1000)
	if q.DriverCost != 1500 || q.Total != 4500 {
		t.Fatalf("quote with driver: %+v", q)
	}
}

func TestQuoteMatchesServerFormula(t *testing.T) {
	d := validDraft()
	d.SetDriverRequested(true)
	d.DriverDayRate = 750

	got := d.Quote(1200)
	want := Compute(d.PickupDate, d.ReturnDate, 1200, true, 750)
	if got != want {
		t.Fatalf("quote %+v diverges from Compute %+v", got, want)
	}
}
