package lifecycle

import (
	"testing"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/models"
)

func newBooking() *models.Booking {
	return &models.Booking{
		ID:            "b1",
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}
}

func TestBookingHappyPath(t *testing.T) {
	b := newBooking()

	if err := TransitionBooking(b, models.BookingConfirmed); err != nil {
		t.Fatalf("pending -> confirmed: %v", err)
	}
	if err := TransitionBooking(b, models.BookingCompleted); err != nil {
		t.Fatalf("confirmed -> completed: %v", err)
	}
	if b.Status != models.BookingCompleted {
		t.Errorf("status = %s, want completed", b.Status)
	}
}

func TestBookingInvalidTransitions(t *testing.T) {
	cases := []struct {
		name string
		from models.BookingStatus
		to   models.BookingStatus
	}{
		{"skip confirmed", models.BookingPending, models.BookingCompleted},
		{"terminal completed", models.BookingCompleted, models.BookingConfirmed},
		{"terminal cancelled", models.BookingCancelled, models.BookingConfirmed},
		{"self transition", models.BookingPending, models.BookingPending},
		{"revert confirmed", models.BookingConfirmed, models.BookingPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBooking()
			b.Status = tc.from
			err := TransitionBooking(b, tc.to)
			if !apperr.IsInvalidTransition(err) {
				t.Errorf("%s -> %s: got %v, want InvalidTransition", tc.from, tc.to, err)
			}
			if b.Status != tc.from {
				t.Errorf("status mutated on rejected transition: %s", b.Status)
			}
		})
	}
}

func TestBookingCancellation(t *testing.T) {
	b := newBooking()
	if err := TransitionBooking(b, models.BookingCancelled); err != nil {
		t.Fatalf("pending -> cancelled: %v", err)
	}

	b = newBooking()
	b.Status = models.BookingConfirmed
	if err := TransitionBooking(b, models.BookingCancelled); err != nil {
		t.Fatalf("confirmed -> cancelled: %v", err)
	}
}

func TestPaymentUnreachableWhilePending(t *testing.T) {
	b := newBooking()
	if err := MarkPaid(b); !apperr.IsInvalidTransition(err) {
		t.Errorf("pay while pending: got %v, want InvalidTransition", err)
	}
	if b.PaymentStatus != models.PaymentPending {
		t.Errorf("payment status mutated: %s", b.PaymentStatus)
	}
}

func TestPaymentAfterConfirmation(t *testing.T) {
	b := newBooking()
	if err := TransitionBooking(b, models.BookingConfirmed); err != nil {
		t.Fatal(err)
	}
	if err := MarkPaid(b); err != nil {
		t.Fatalf("pay after confirm: %v", err)
	}
	if err := MarkPaid(b); !apperr.IsInvalidTransition(err) {
		t.Errorf("double pay: got %v, want InvalidTransition", err)
	}
}

func TestRefundRules(t *testing.T) {
	// Refund needs paid + terminal booking status.
	b := newBooking()
	if err := Refund(b); !apperr.IsInvalidTransition(err) {
		t.Errorf("refund unpaid: got %v", err)
	}

	if err := TransitionBooking(b, models.BookingConfirmed); err != nil {
		t.Fatal(err)
	}
	if err := MarkPaid(b); err != nil {
		t.Fatal(err)
	}
	if err := Refund(b); !apperr.IsInvalidTransition(err) {
		t.Errorf("refund while confirmed: got %v", err)
	}

	if err := TransitionBooking(b, models.BookingCancelled); err != nil {
		t.Fatal(err)
	}
	if err := Refund(b); err != nil {
		t.Fatalf("refund after cancel: %v", err)
	}
	if b.PaymentStatus != models.PaymentRefunded {
		t.Errorf("payment status = %s, want refunded", b.PaymentStatus)
	}
}
