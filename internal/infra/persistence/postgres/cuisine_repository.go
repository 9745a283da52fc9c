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

// cuisineRepository implements the repository.CuisineRepository interface using GORM.
type cuisineRepository struct {
	db *gorm.DB
}

// NewCuisineRepository is the constructor for cuisineRepository.
func NewCuisineRepository(db *gorm.DB) repository.CuisineRepository {
	return &cuisineRepository{db: db}
}

// FindByID retrieves a cuisine by its unique ID.
func (repo *cuisineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cuisine, error) {
	var cuisineM model.CuisineModel
	if err := repo.db.WithContext(ctx).First(&cuisineM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCuisineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cuisine by id")
	}

	return &entity.Cuisine{ID: cuisineM.ID, Name: cuisineM.Name}, nil
}

// List retrieves all cuisines ordered by name.
func (repo *cuisineRepository) List(ctx context.Context) ([]*entity.Cuisine, error) {
	var cuisineModels []*model.CuisineModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&cuisineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cuisines")
	}

	cuisines := make([]*entity.Cuisine, 0, len(cuisineModels))
	for _, cuisineM := range cuisineModels {
		cuisines = append(cuisines, &entity.Cuisine{ID: cuisineM.ID, Name: cuisineM.Name})
	}

	return cuisines, nil
}

// Create persists a new cuisine.
func (repo *cuisineRepository) Create(ctx context.Context, cuisine *entity.Cuisine) error {
	cuisineM := model.CuisineModel{ID: cuisine.ID, Name: cuisine.Name}
	if cuisineM.ID == uuid.Nil {
		cuisineM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(&cuisineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCuisineAlreadyExists
		}

		return errors.Wrap(err, "failed to create cuisine")
	}

	cuisine.ID = cuisineM.ID

	return nil
}
