package services

import (
	"context"
	"sort"

	"mojorewards/internal/datastore"
	"mojorewards/internal/models"

	"github.com/samber/do"
)

type ServiceMilestone struct {
	container *do.Injector
	client    *datastore.Client
}

func NewServiceMilestone(container *do.Injector) (*ServiceMilestone, error) {
	client, err := do.Invoke[*datastore.Client](container)
	if err != nil {
		return nil, err
	}

	return &ServiceMilestone{container, client}, nil
}

func (service *ServiceMilestone) GetMilestones(ctx context.Context) ([]models.LevelMilestone, error) {
	milestones, err := service.client.GetMilestones(ctx)
	if err != nil {
		return nil, err
	}

	return SortMilestones(milestones), nil
}

// FindMilestone returns the milestone with the given tier from a fetched list.
func FindMilestone(milestones []models.LevelMilestone, tier int) (*models.LevelMilestone, error) {
	for i := range milestones {
		if milestones[i].Tier == tier {
			return &milestones[i], nil
		}
	}
	return nil, ErrNotFound
}

// SortMilestones returns a copy ordered ascending by tier.
func SortMilestones(milestones []models.LevelMilestone) []models.LevelMilestone {
	sorted := make([]models.LevelMilestone, len(milestones))
	copy(sorted, milestones)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tier < sorted[j].Tier
	})
	return sorted
}
