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

// staffRepository implements the repository.StaffRepository interface using GORM.
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

// FindByUserAndRestaurant retrieves the staff record for a (user, restaurant) pair.
func (repo *staffRepository) FindByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.RestaurantStaff, error) {
	var staffM model.RestaurantStaffModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&staffM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff record")
	}

	return toStaffDomain(&staffM), nil
}

// FindByUser retrieves every staff record for a user.
func (repo *staffRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RestaurantStaff, error) {
	var staffModels []*model.RestaurantStaffModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&staffModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff records by user")
	}

	records := make([]*entity.RestaurantStaff, 0, len(staffModels))
	for _, staffM := range staffModels {
		records = append(records, toStaffDomain(staffM))
	}

	return records, nil
}

// Create persists a new staff record.
func (repo *staffRepository) Create(ctx context.Context, staff *entity.RestaurantStaff) error {
	staffM := fromStaffDomain(staff)
	if staffM.ID == uuid.Nil {
		staffM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(staffM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrStaffAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return errors.Wrap(err, "failed to create staff record")
	}

	staff.ID = staffM.ID
	staff.CreatedAt = staffM.CreatedAt
	staff.UpdatedAt = staffM.UpdatedAt

	return nil
}

// Update modifies an existing staff record.
func (repo *staffRepository) Update(ctx context.Context, staff *entity.RestaurantStaff) error {
	staffM := fromStaffDomain(staff)

	if err := repo.db.WithContext(ctx).Save(staffM).Error; err != nil {
		return errors.Wrap(err, "failed to update staff record")
	}

	staff.UpdatedAt = staffM.UpdatedAt

	return nil
}

// toStaffDomain maps the persistence model to a pure domain entity.
func toStaffDomain(data *model.RestaurantStaffModel) *entity.RestaurantStaff {
	return &entity.RestaurantStaff{
		ID:           data.ID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		Role:         entity.StaffRole(data.Role),
		LastLoginAt:  data.LastLoginAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromStaffDomain maps a domain entity to the persistence model.
func fromStaffDomain(data *entity.RestaurantStaff) *model.RestaurantStaffModel {
	return &model.RestaurantStaffModel{
		ID:           data.ID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		Role:         data.Role.String(),
		LastLoginAt:  data.LastLoginAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
