package lifecycle

import (
	"time"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/models"
)

var projectTransitions = map[models.ProjectStatus][]models.ProjectStatus{
	models.ProjectPlanning:   {models.ProjectBidding, models.ProjectCancelled},
	models.ProjectBidding:    {models.ProjectInProgress, models.ProjectCancelled},
	models.ProjectInProgress: {models.ProjectCompleted, models.ProjectCancelled},
	// completed, cancelled: terminal
}

func TransitionProject(p *models.ConstructionProject, next models.ProjectStatus) error {
	for _, allowed := range projectTransitions[p.Status] {
		if next == allowed {
			p.Status = next
			return nil
		}
	}
	return apperr.Transitionf("project %s: cannot transition %s -> %s", p.ID, p.Status, next)
}

// CompleteMilestone marks a milestone done. Completion is monotonic: a
// second call is a no-op and the original timestamp is kept. Returns
// whether this call changed anything.
func CompleteMilestone(p *models.ConstructionProject, milestoneID string, now time.Time) (bool, error) {
	for i := range p.Milestones {
		m := &p.Milestones[i]
		if m.ID != milestoneID {
			continue
		}
		if m.Completed {
			return false, nil
		}
		m.Completed = true
		t := now
		m.CompletedAt = &t
		return true, nil
	}
	return false, apperr.NotFoundf("project %s: milestone %s not found", p.ID, milestoneID)
}

var materialTransitions = map[models.MaterialStatus]models.MaterialStatus{
	models.MaterialPending: models.MaterialOrdered,
	models.MaterialOrdered: models.MaterialDelivered,
}

// SetMaterialStatus advances a material along pending -> ordered ->
// delivered; anything out of order is rejected.
func SetMaterialStatus(p *models.ConstructionProject, materialID string, next models.MaterialStatus) error {
	for i := range p.Materials {
		m := &p.Materials[i]
		if m.ID != materialID {
			continue
		}
		if materialTransitions[m.Status] != next {
			return apperr.Transitionf("project %s: material %s cannot transition %s -> %s", p.ID, materialID, m.Status, next)
		}
		m.Status = next
		return nil
	}
	return apperr.NotFoundf("project %s: material %s not found", p.ID, materialID)
}
