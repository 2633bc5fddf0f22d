package lifecycle

import (
	"testing"
	"time"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/models"
)

func newAgreement() *models.RentalAgreement {
	return &models.RentalAgreement{ID: "a1", Status: models.AgreementDraft}
}

func TestAgreementHappyPath(t *testing.T) {
	a := newAgreement()

	if err := TransitionAgreement(a, models.AgreementPending); err != nil {
		t.Fatalf("draft -> pending: %v", err)
	}
	SignAgreement(a, time.Now())
	if err := TransitionAgreement(a, models.AgreementActive); err != nil {
		t.Fatalf("pending -> active: %v", err)
	}
	if err := TransitionAgreement(a, models.AgreementCompleted); err != nil {
		t.Fatalf("active -> completed: %v", err)
	}
}

func TestActivationRequiresSignature(t *testing.T) {
	a := newAgreement()
	if err := TransitionAgreement(a, models.AgreementPending); err != nil {
		t.Fatal(err)
	}

	err := TransitionAgreement(a, models.AgreementActive)
	if !apperr.IsPreconditionFailed(err) {
		t.Fatalf("activate unsigned: got %v, want PreconditionFailed", err)
	}
	if a.Status != models.AgreementPending {
		t.Errorf("status mutated on failed activation: %s", a.Status)
	}
}

func TestSignKeepsFirstTimestamp(t *testing.T) {
	a := newAgreement()
	first := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	SignAgreement(a, first)
	SignAgreement(a, first.Add(48*time.Hour))

	if a.SignedAt == nil || !a.SignedAt.Equal(first) {
		t.Errorf("signedAt = %v, want %v", a.SignedAt, first)
	}
}

func TestAgreementCancellation(t *testing.T) {
	for _, from := range []models.AgreementStatus{
		models.AgreementDraft,
		models.AgreementPending,
		models.AgreementActive,
	} {
		a := newAgreement()
		a.Status = from
		if err := TransitionAgreement(a, models.AgreementCancelled); err != nil {
			t.Errorf("%s -> cancelled: %v", from, err)
		}
	}

	a := newAgreement()
	a.Status = models.AgreementCompleted
	if err := TransitionAgreement(a, models.AgreementCancelled); !apperr.IsInvalidTransition(err) {
		t.Errorf("completed -> cancelled: got %v, want InvalidTransition", err)
	}
}

func TestAgreementNoSkipping(t *testing.T) {
	a := newAgreement()
	SignAgreement(a, time.Now())
	if err := TransitionAgreement(a, models.AgreementActive); !apperr.IsInvalidTransition(err) {
		t.Errorf("draft -> active: got %v, want InvalidTransition", err)
	}
}
