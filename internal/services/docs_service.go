package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"campusbooking/internal/domain/models"
	"campusbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a PDF confirmation for an accepted booking.
type DocsService struct {
	Query  QueryService
	Loader func(ctx context.Context, id int64) (models.Booking, error)
}

func (s DocsService) GenerateConfirmation(ctx context.Context, bookingID int64) ([]byte, string, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(ctx, "docs", "generate_confirmation", "rendering confirmation", "booking_id", bookingID)
	return buildConfirmationPDF(b)
}

func (s DocsService) load(ctx context.Context, id int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Query.GetBooking(ctx, id)
}

func buildConfirmationPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	window := b.Interval()
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking     : #%d", b.ID),
		fmt.Sprintf("Venue       : %s (#%d)", safe(b.VenueName, "-"), b.VenueID),
		fmt.Sprintf("Booked by   : %s", safe(b.BookerName, "-")),
		fmt.Sprintf("From        : %s", utils.FormatDisplay(window.Start)),
		fmt.Sprintf("Until       : %s", utils.FormatDisplay(window.End)),
		fmt.Sprintf("Duration    : %s", window.Duration()),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "The venue is reserved from the start time up to, but not including, the end time. Issued "+utils.FormatDisplay(utils.NowUTC())+".", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BOOKING_%d_%s.pdf", b.ID, utils.SafeFilenamePart(b.VenueName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
