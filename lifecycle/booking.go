// Package lifecycle implements the state machines for bookings, rental
// agreements, and construction projects. Each transition either mutates
// the entity in a single step or returns a typed error; there are no
// partial updates.
package lifecycle

import (
	"DestinyRealEstate/apperr"
	"DestinyRealEstate/models"
)

var bookingTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
	// completed, cancelled: terminal
}

// TransitionBooking moves a booking to next, rejecting anything outside
// the transition table. Terminal states allow no transition, including
// self-transitions.
func TransitionBooking(b *models.Booking, next models.BookingStatus) error {
	for _, allowed := range bookingTransitions[b.Status] {
		if next == allowed {
			b.Status = next
			return nil
		}
	}
	return apperr.Transitionf("booking %s: cannot transition %s -> %s", b.ID, b.Status, next)
}

// MarkPaid sets the payment axis to paid. Payment is only accepted once
// the booking status has left pending.
func MarkPaid(b *models.Booking) error {
	if b.PaymentStatus != models.PaymentPending {
		return apperr.Transitionf("booking %s: payment already %s", b.ID, b.PaymentStatus)
	}
	if b.Status == models.BookingPending {
		return apperr.Transitionf("booking %s: cannot pay while booking is pending", b.ID)
	}
	b.PaymentStatus = models.PaymentPaid
	return nil
}

// Refund is only reachable after payment, and once the booking has
// reached a terminal state.
func Refund(b *models.Booking) error {
	if b.PaymentStatus != models.PaymentPaid {
		return apperr.Transitionf("booking %s: cannot refund payment in state %s", b.ID, b.PaymentStatus)
	}
	if b.Status != models.BookingCancelled && b.Status != models.BookingCompleted {
		return apperr.Transitionf("booking %s: cannot refund while booking is %s", b.ID, b.Status)
	}
	b.PaymentStatus = models.PaymentRefunded
	return nil
}
