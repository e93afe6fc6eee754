package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"campusbooking/internal/domain"
	"campusbooking/internal/domain/models"
	"campusbooking/internal/testutil"
)

func TestDocsServiceGenerate(t *testing.T) {
	loader := func(_ context.Context, id int64) (models.Booking, error) {
		return models.Booking{
			ID:         id,
			VenueID:    3,
			VenueName:  "Lecture Hall A",
			BookerName: "Tester",
			Start:      testutil.At(9, 0),
			End:        testutil.At(10, 30),
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateConfirmation(context.Background(), 12)
	if err != nil {
		t.Fatalf("GenerateConfirmation returned error: %v", err)
	}
	if len(pdf) == 0 || !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("GenerateConfirmation returned no PDF data")
	}
	if !strings.HasPrefix(filename, "BOOKING_12_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceMissingBooking(t *testing.T) {
	svc := DocsService{Loader: func(_ context.Context, id int64) (models.Booking, error) {
		return models.Booking{}, domain.BookingNotFound(id)
	}}

	if _, _, err := svc.GenerateConfirmation(context.Background(), 5); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
