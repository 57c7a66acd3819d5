package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/circulation-service/circulation/internal/model"
	"github.com/Astemirdum/circulation-service/circulation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	CurrentStatus(ctx context.Context, assetID int64) (model.Status, error)
	SetStatus(ctx context.Context, assetID int64, name model.StatusName) error

	IsCheckedOut(ctx context.Context, assetID int64) (bool, error)
	CheckOut(ctx context.Context, assetID, cardID int64, now time.Time) (model.Checkout, error)
	CheckIn(ctx context.Context, assetID int64, now time.Time) (model.CheckInResult, error)
	GetLatestCheckout(ctx context.Context, assetID int64) (model.Checkout, error)
	GetCurrentPatron(ctx context.Context, assetID int64) (model.Patron, error)
	GetCheckout(ctx context.Context, id int64) (model.Checkout, error)
	ListCheckouts(ctx context.Context, p model.PageRequest) (model.Page[model.Checkout], error)
	GetCheckoutHistory(ctx context.Context, assetID int64, p model.PageRequest) (model.Page[model.CheckoutHistory], error)

	PlaceHold(ctx context.Context, assetID, cardID int64, now time.Time) (model.Hold, error)
	GetEarliestHold(ctx context.Context, assetID int64) (model.Hold, bool, error)
	PromoteEarliestHold(ctx context.Context, assetID int64, now time.Time) (bool, error)
	GetCurrentHolds(ctx context.Context, assetID int64, p model.PageRequest) (model.Page[model.Hold], error)
	GetCurrentHoldPatron(ctx context.Context, holdID int64) (model.Patron, error)
	GetCurrentHoldPlaced(ctx context.Context, holdID int64) (time.Time, error)
}

var _ CirculationService = (*service.Service)(nil)
