package lifecycle

import (
	"time"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/models"
)

var agreementTransitions = map[models.AgreementStatus][]models.AgreementStatus{
	models.AgreementDraft:   {models.AgreementPending, models.AgreementCancelled},
	models.AgreementPending: {models.AgreementActive, models.AgreementCancelled},
	models.AgreementActive:  {models.AgreementCompleted, models.AgreementCancelled},
	// completed, cancelled: terminal
}

// SignAgreement records the signing timestamp. Signing twice keeps the
// original timestamp.
func SignAgreement(a *models.RentalAgreement, now time.Time) {
	if a.SignedAt == nil {
		t := now
		a.SignedAt = &t
	}
}

// TransitionAgreement moves an agreement to next. Entering active
// requires a recorded signing timestamp.
func TransitionAgreement(a *models.RentalAgreement, next models.AgreementStatus) error {
	allowed := false
	for _, s := range agreementTransitions[a.Status] {
		if next == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return apperr.Transitionf("agreement %s: cannot transition %s -> %s", a.ID, a.Status, next)
	}
	if next == models.AgreementActive && a.SignedAt == nil {
		return apperr.Preconditionf("agreement %s: cannot activate before signing", a.ID)
	}
	a.Status = next
	return nil
}
