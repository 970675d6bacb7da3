package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"

	"parcel-service/internal/geometry"
	"parcel-service/internal/model"
	"parcel-service/internal/repository"
	"parcel-service/internal/utils"
)

type ParcelService struct {
	parcelRepo  *repository.ParcelRepository
	landuseRepo *repository.LanduseRepository
}

func NewParcelService(parcelRepo *repository.ParcelRepository, landuseRepo *repository.LanduseRepository) *ParcelService {
	return &ParcelService{
		parcelRepo:  parcelRepo,
		landuseRepo: landuseRepo,
	}
}

type ParcelAttributes struct {
	AlkisFeatureID   *string
	StateName        *string
	DistrictName     *string
	CommunalDistrict *string
	MunicipalityName *string
	CadastralArea    *string
	CadastralParcel  *string
	Zipcode          *string
}

type CreateParcelInput struct {
	Coordinates []geometry.LatLng
	LanduseID   *string
	Attributes  ParcelAttributes
}

func (s *ParcelService) Create(ctx context.Context, principal model.Principal, input CreateParcelInput) (*model.Parcel, error) {
	if !principal.IsLandowner() && !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	encoded, area, err := buildParcelGeometry(input.Coordinates)
	if err != nil {
		return nil, err
	}

	parcel := &model.Parcel{
		OwnerID:          &principal.UserID,
		Polygon:          encoded,
		AreaSquareMeters: area,
	}
	applyAttributes(parcel, input.Attributes)

	if input.LanduseID != nil {
		landuseID, err := uuid.Parse(*input.LanduseID)
		if err != nil {
			return nil, ErrInvalidInput
		}
		if _, err := s.landuseRepo.GetByID(ctx, landuseID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidInput
			}
			return nil, err
		}
		parcel.LanduseID = &landuseID
	}

	if err := s.parcelRepo.Create(ctx, parcel); err != nil {
		return nil, err
	}

	return parcel, nil
}

type UpdateParcelInput struct {
	Coordinates []geometry.LatLng // empty = geometry untouched
	LanduseID   *string
	Attributes  ParcelAttributes
}

// Update changes parcel attributes. A new coordinate list rebuilds the
// polygon and recomputes the stored area; the area is never writable on its
// own.
func (s *ParcelService) Update(ctx context.Context, principal model.Principal, id string, input UpdateParcelInput) (*model.Parcel, error) {
	parcel, err := s.getOwned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if len(input.Coordinates) > 0 {
		encoded, area, err := buildParcelGeometry(input.Coordinates)
		if err != nil {
			return nil, err
		}
		parcel.Polygon = encoded
		parcel.AreaSquareMeters = area
	}

	applyAttributes(parcel, input.Attributes)

	if input.LanduseID != nil {
		landuseID, err := uuid.Parse(*input.LanduseID)
		if err != nil {
			return nil, ErrInvalidInput
		}
		parcel.LanduseID = &landuseID
	}

	if err := s.parcelRepo.Update(ctx, parcel); err != nil {
		return nil, err
	}

	return parcel, nil
}

func (s *ParcelService) Get(ctx context.Context, principal model.Principal, id string) (*model.Parcel, error) {
	parcel, err := s.parcelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return parcel, nil
}

func (s *ParcelService) List(ctx context.Context, principal model.Principal, filter repository.ParcelListFilter) ([]model.Parcel, error) {
	if principal.IsLandowner() {
		ownerID := principal.UserID.String()
		filter.OwnerID = &ownerID
	}
	return s.parcelRepo.List(ctx, filter)
}

func (s *ParcelService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if _, err := s.getOwned(ctx, principal, id); err != nil {
		return err
	}
	return s.parcelRepo.Delete(ctx, id)
}

func (s *ParcelService) getOwned(ctx context.Context, principal model.Principal, id string) (*model.Parcel, error) {
	parcel, err := s.parcelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !principal.IsAdmin() {
		if parcel.OwnerID == nil || *parcel.OwnerID != principal.UserID {
			return nil, ErrPermissionDenied
		}
	}

	return parcel, nil
}

func applyAttributes(parcel *model.Parcel, attrs ParcelAttributes) {
	if attrs.AlkisFeatureID != nil {
		parcel.AlkisFeatureID = attrs.AlkisFeatureID
	}
	if attrs.StateName != nil {
		parcel.StateName = attrs.StateName
	}
	if attrs.DistrictName != nil {
		parcel.DistrictName = attrs.DistrictName
	}
	if attrs.CommunalDistrict != nil {
		parcel.CommunalDistrict = attrs.CommunalDistrict
	}
	if attrs.MunicipalityName != nil {
		parcel.MunicipalityName = attrs.MunicipalityName
	}
	if attrs.CadastralArea != nil {
		parcel.CadastralArea = attrs.CadastralArea
	}
	if attrs.CadastralParcel != nil {
		ref := utils.NormalizeCadastralRef(*attrs.CadastralParcel)
		parcel.CadastralParcel = &ref
	}
	if attrs.Zipcode != nil {
		parcel.Zipcode = attrs.Zipcode
	}
}

// buildParcelGeometry runs the full ingestion pipeline: ring construction
// and closure, validation, projection for the derived area, and GeoJSON
// encoding for storage.
func buildParcelGeometry(points []geometry.LatLng) (string, float64, error) {
	ring, err := geometry.BuildRing(points)
	if err != nil {
		return "", 0, err
	}

	polygon := orb.Polygon{ring}
	area, err := geometry.ProjectedAreaM2(polygon)
	if err != nil {
		return "", 0, err
	}

	encoded, err := geometry.EncodePolygon(polygon)
	if err != nil {
		return "", 0, err
	}

	return encoded, area, nil
}

func (s *ParcelService) CreateLanduse(ctx context.Context, principal model.Principal, name, description string) (*model.Landuse, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if name == "" {
		return nil, ErrInvalidInput
	}

	landuse := &model.Landuse{Name: name, Description: description}
	if err := s.landuseRepo.Create(ctx, landuse); err != nil {
		return nil, err
	}
	return landuse, nil
}

func (s *ParcelService) ListLanduses(ctx context.Context) ([]model.Landuse, error) {
	return s.landuseRepo.List(ctx)
}
