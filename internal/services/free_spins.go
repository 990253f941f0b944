package services

import (
	"context"
	"time"

	"mojorewards/internal/datastore"
	"mojorewards/internal/models"

	"github.com/samber/do"
)

type ServiceFreeSpins struct {
	container *do.Injector
	client    *datastore.Client
}

func NewServiceFreeSpins(container *do.Injector) (*ServiceFreeSpins, error) {
	client, err := do.Invoke[*datastore.Client](container)
	if err != nil {
		return nil, err
	}

	return &ServiceFreeSpins{container, client}, nil
}

func (service *ServiceFreeSpins) GetActiveOffers(ctx context.Context, now time.Time) ([]models.FreeSpinsOffer, error) {
	offers, err := service.client.GetFreeSpins(ctx)
	if err != nil {
		return nil, err
	}

	return ActiveOffers(offers, now), nil
}

func (service *ServiceFreeSpins) FindOffer(ctx context.Context, id string, now time.Time) (*models.FreeSpinsOffer, error) {
	offers, err := service.GetActiveOffers(ctx, now)
	if err != nil {
		return nil, err
	}

	for i := range offers {
		if offers[i].ID == id {
			return &offers[i], nil
		}
	}
	return nil, ErrNotFound
}

// ActiveOffers keeps offers that are active and expire strictly after now.
func ActiveOffers(offers []models.FreeSpinsOffer, now time.Time) []models.FreeSpinsOffer {
	active := make([]models.FreeSpinsOffer, 0, len(offers))
	for _, offer := range offers {
		if offer.Live(now) {
			active = append(active, offer)
		}
	}
	return active
}
