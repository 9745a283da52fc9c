package postgres

import (
	"context"

	"savor/internal/domain/entity"
	"savor/internal/domain/repository"
	"savor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderAddress, error) {
	var addressM model.OrderAddressModel
	if err := repo.db.WithContext(ctx).First(&addressM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// ListSavedByUser retrieves a user's saved addresses.
func (repo *addressRepository) ListSavedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OrderAddress, error) {
	var addressModels []*model.OrderAddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND saved = true", userID).
		Order("created_at ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved addresses")
	}

	addresses := make([]*entity.OrderAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// CountSavedByUserForUpdate counts a user's saved addresses for the cap
// check. Row locks cannot serialize this: with zero saved rows there is
// nothing to lock, and a concurrent insert stays invisible to the count.
// An advisory transaction lock keyed on the user serializes the racing
// transactions instead, held until their commit.
func (repo *addressRepository) CountSavedByUserForUpdate(ctx context.Context, userID uuid.UUID) (int64, error) {
	err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", "saved_addresses:"+userID.String()).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to acquire saved-address lock")
	}

	var count int64
	err = repo.db.WithContext(ctx).
		Model(&model.OrderAddressModel{}).
		Where("user_id = ? AND saved = true", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count saved addresses")
	}

	return count, nil
}

// Create persists a new address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.OrderAddress) error {
	addressM := fromAddressDomain(address)
	if addressM.ID == uuid.Nil {
		addressM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return errors.Wrap(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Update modifies an existing address.
func (repo *addressRepository) Update(ctx context.Context, address *entity.OrderAddress) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Save(addressM).Error; err != nil {
		return errors.Wrap(err, "failed to update address")
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// toAddressDomain maps the persistence model to a pure domain entity.
func toAddressDomain(data *model.OrderAddressModel) *entity.OrderAddress {
	return &entity.OrderAddress{
		ID:           data.ID,
		UserID:       data.UserID,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		PhoneNumber:  data.PhoneNumber,
		Email:        data.Email,
		Saved:        data.Saved,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAddressDomain maps a domain entity to the persistence model.
func fromAddressDomain(data *entity.OrderAddress) *model.OrderAddressModel {
	return &model.OrderAddressModel{
		ID:           data.ID,
		UserID:       data.UserID,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		PhoneNumber:  data.PhoneNumber,
		Email:        data.Email,
		Saved:        data.Saved,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
