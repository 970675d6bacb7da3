package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parcel-service/internal/model"
	"parcel-service/internal/repository"
)

// Pricing holds the analyse-plus basket rates, from configuration.
type Pricing struct {
	AnalysePlusRate float64 // per basket item
	TaxRate         float64 // e.g. 0.19 for 19%
}

type OfferService struct {
	offerRepo  *repository.OfferRepository
	parcelRepo *repository.ParcelRepository
	basketRepo *repository.BasketRepository
	pricing    Pricing
}

func NewOfferService(
	offerRepo *repository.OfferRepository,
	parcelRepo *repository.ParcelRepository,
	basketRepo *repository.BasketRepository,
	pricing Pricing,
) *OfferService {
	return &OfferService{
		offerRepo:  offerRepo,
		parcelRepo: parcelRepo,
		basketRepo: basketRepo,
		pricing:    pricing,
	}
}

type CreateOfferInput struct {
	ParcelID string
	Price    float64
}

func (s *OfferService) Create(ctx context.Context, principal model.Principal, input CreateOfferInput) (*model.AreaOffer, error) {
	if input.Price <= 0 {
		return nil, ErrInvalidInput
	}

	parcelID, err := uuid.Parse(input.ParcelID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	parcel, err := s.parcelRepo.GetByID(ctx, parcelID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !principal.IsAdmin() {
		if !principal.IsLandowner() || parcel.OwnerID == nil || *parcel.OwnerID != principal.UserID {
			return nil, ErrPermissionDenied
		}
	}

	offer := &model.AreaOffer{
		ParcelID: parcelID,
		Price:    input.Price,
		IsActive: true,
	}
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

func (s *OfferService) Get(ctx context.Context, principal model.Principal, id string) (*model.AreaOffer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return offer, nil
}

func (s *OfferService) List(ctx context.Context, principal model.Principal, filter repository.OfferListFilter) ([]model.AreaOffer, error) {
	return s.offerRepo.List(ctx, filter)
}

func (s *OfferService) Delete(ctx context.Context, principal model.Principal, id string) error {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !principal.IsAdmin() {
		parcel, err := s.parcelRepo.GetByID(ctx, offer.ParcelID.String())
		if err != nil {
			return err
		}
		if parcel.OwnerID == nil || *parcel.OwnerID != principal.UserID {
			return ErrPermissionDenied
		}
	}

	return s.offerRepo.Delete(ctx, id)
}

// Confirm records a one-time confirmation; a second confirmation conflicts.
func (s *OfferService) Confirm(ctx context.Context, principal model.Principal, id string) (*model.OfferConfirmation, error) {
	if !principal.IsDeveloper() && !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !offer.IsActive {
		return nil, ErrConflict
	}

	if _, err := s.offerRepo.GetConfirmation(ctx, offer.ID.String()); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	confirmation := &model.OfferConfirmation{
		OfferID:       offer.ID,
		ConfirmedByID: principal.UserID,
	}
	if err := s.offerRepo.CreateConfirmation(ctx, confirmation); err != nil {
		return nil, err
	}

	return confirmation, nil
}

func (s *OfferService) AddBasketItem(ctx context.Context, principal model.Principal, parcelID string) (*model.BasketItem, error) {
	id, err := uuid.Parse(parcelID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	if _, err := s.parcelRepo.GetByID(ctx, id.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := s.basketRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ParcelID == id {
			return nil, ErrConflict
		}
	}

	item := &model.BasketItem{
		UserID:   principal.UserID,
		ParcelID: id,
	}
	if err := s.basketRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *OfferService) ListBasketItems(ctx context.Context, principal model.Principal) ([]model.BasketItem, error) {
	return s.basketRepo.ListByUser(ctx, principal.UserID)
}

func (s *OfferService) RemoveBasketItem(ctx context.Context, principal model.Principal, id string) error {
	item, err := s.basketRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if item.UserID != principal.UserID && !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	return s.basketRepo.Delete(ctx, id)
}

// BasketSummary is the priced overview of a user's analyse-plus basket.
type BasketSummary struct {
	NumberOfItems int     `json:"number_of_items"`
	CostPerItem   float64 `json:"cost_per_item"`
	SumOfItems    float64 `json:"sum_of_items"`
	TaxInPercent  int     `json:"tax_in_percent"`
	TaxAmount     float64 `json:"tax_amount"`
	Subtotal      float64 `json:"subtotal"`
}

func (s *OfferService) GetBasketSummary(ctx context.Context, principal model.Principal) (*BasketSummary, error) {
	count, err := s.basketRepo.CountByUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrInvalidInput
	}

	summary := summarizeBasket(int(count), s.pricing)
	return &summary, nil
}

// summarizeBasket prices a basket: flat rate per item plus tax.
func summarizeBasket(count int, pricing Pricing) BasketSummary {
	total := float64(count) * pricing.AnalysePlusRate
	tax := total * pricing.TaxRate

	return BasketSummary{
		NumberOfItems: count,
		CostPerItem:   round2(pricing.AnalysePlusRate),
		SumOfItems:    round2(total),
		TaxInPercent:  int(math.Round(pricing.TaxRate * 100)),
		TaxAmount:     round2(tax),
		Subtotal:      round2(total + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
