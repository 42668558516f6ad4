package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "carrental/internal/config"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/draft"
	"carrental/internal/repositories"
	"carrental/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a booking receipt PDF for the renter or the owner.
type ReceiptService struct {
	BookingRepo repositories.BookingRepository
	CarRepo     repositories.CarRepository
	DB          *sql.DB
	RequestID   string

	Currency      string
	DriverDayRate int64
}

func (s ReceiptService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ReceiptService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s ReceiptService) cars() repositories.CarRepository {
	if s.CarRepo.DB != nil {
		return s.CarRepo
	}
	return repositories.CarRepository{DB: s.db()}
}

// GenerateReceipt builds the PDF and a download filename. Only the booking's
// renter or the car's owner may fetch it.
func (s ReceiptService) GenerateReceipt(bookingID, requesterID int64) ([]byte, string, error) {
	b, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return nil, "", err
	}
	if requesterID != b.UserID && requesterID != b.OwnerID {
		return nil, "", domain.UnauthorizedError{Msg: "not your booking"}
	}

	// Rebuild the quote breakdown from the stored rate so the receipt shows
	// the same decomposition the checkout quote did.
	var quote draft.Quote
	rate := s.DriverDayRate
	if rate <= 0 {
		rate = draft.DefaultDriverDayRate
	}
	pickup, perr := utils.ParseDate(b.PickupDate)
	ret, rerr := utils.ParseDate(b.ReturnDate)
	if perr == nil && rerr == nil {
		if car, err := s.cars().GetByID(b.CarID); err == nil {
			quote = draft.Compute(pickup, ret, car.PricePerDay, b.DriverNeeded, rate)
		}
	}
	if quote.Total == 0 {
		quote.Total = b.Price
	}

	utils.LogEvent(s.RequestID, "receipt", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return s.buildReceiptPDF(b, quote)
}

func (s ReceiptService) buildReceiptPDF(b models.Booking, q draft.Quote) ([]byte, string, error) {
	currency := s.Currency
	if currency == "" {
		currency = "Rs."
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	payment := b.PaymentMethod
	if b.PaymentMethod == models.PaymentCard && b.CardNumber != "" {
		payment = fmt.Sprintf("card (%s)", utils.MaskCardNumber(b.CardNumber))
	}
	if b.PaymentMethod == models.PaymentNetBanking && b.BankCode != "" {
		payment = fmt.Sprintf("netbanking (%s)", strings.ToUpper(b.BankCode))
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Code  : %s", safe(b.BookingCode, "-")),
		fmt.Sprintf("Car           : %s", safe(strings.TrimSpace(b.CarBrand+" "+b.CarModel), "-")),
		fmt.Sprintf("Renter        : %s", safe(b.RenterName, "-")),
		fmt.Sprintf("Phone         : %s", safe(b.Phone, "-")),
		fmt.Sprintf("Pickup Date   : %s", safe(b.PickupDate, "-")),
		fmt.Sprintf("Return Date   : %s", safe(b.ReturnDate, "-")),
		fmt.Sprintf("Payment       : %s", safe(payment, "-")),
		fmt.Sprintf("Status        : %s", safe(b.Status, "-")),
		fmt.Sprintf("Issued        : %s", time.Now().Format("2006-01-02 15:04")),
	}
	if b.DriverNeeded {
		lines = append(lines, fmt.Sprintf("Driver        : %s (%s)", safe(b.DriverName, "assigned"), safe(b.DriverPhone, "-")))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Price Breakdown")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Car Rental    : %s x %d days = %s",
		utils.FormatAmount(currency, q.RentalCost/maxInt64(q.Days, 1)), q.Days,
		utils.FormatAmount(currency, q.RentalCost)))
	pdf.Ln(7)
	if b.DriverNeeded {
		pdf.Cell(0, 7, fmt.Sprintf("Driver Service: %s x %d days = %s",
			utils.FormatAmount(currency, q.DriverCost/maxInt64(q.Days, 1)), q.Days,
			utils.FormatAmount(currency, q.DriverCost)))
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total Amount  : %s", utils.FormatAmount(currency, b.Price)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry this receipt and your driving license when collecting the car.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render receipt", Err: err}
	}

	filename := fmt.Sprintf("RECEIPT_%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
