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

// restaurantRepository implements the repository.RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// FindByID retrieves a restaurant by ID regardless of lifecycle status.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Preload("Cuisines").
		First(&restaurantM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM)
}

// FindActiveByID retrieves a restaurant by ID, failing when archived.
// An archived restaurant is indistinguishable from an absent one here,
// which is what the customer-facing read path requires.
func (repo *restaurantRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Preload("Cuisines").
		Where("id = ? AND status = ?", id, entity.LifecycleActive.String()).
		First(&restaurantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find active restaurant by id")
	}

	return toRestaurantDomain(&restaurantM)
}

// ListActive retrieves all active restaurants.
func (repo *restaurantRepository) ListActive(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Preload("Cuisines").
		Where("status = ?", entity.LifecycleActive.String()).
		Order("name ASC").
		Find(&restaurantModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active restaurants")
	}

	return toRestaurantDomains(restaurantModels)
}

// ListByCuisine retrieves all active restaurants serving the cuisine.
func (repo *restaurantRepository) ListByCuisine(ctx context.Context, cuisineID uuid.UUID) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Preload("Cuisines").
		Joins("JOIN restaurant_cuisines rc ON rc.restaurant_model_id = restaurants.id").
		Where("rc.cuisine_model_id = ? AND restaurants.status = ?", cuisineID, entity.LifecycleActive.String()).
		Order("restaurants.name ASC").
		Find(&restaurantModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants by cuisine")
	}

	return toRestaurantDomains(restaurantModels)
}

// Filter retrieves active restaurants matching every supplied predicate.
func (repo *restaurantRepository) Filter(ctx context.Context, filter repository.RestaurantFilter) ([]*entity.Restaurant, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Preload("Cuisines").
		Where("restaurants.status = ?", entity.LifecycleActive.String())

	if filter.Name != nil {
		query = query.Where("restaurants.name ILIKE ?", "%"+*filter.Name+"%")
	}
	if len(filter.CuisineIDs) != 0 {
		query = query.
			Joins("JOIN restaurant_cuisines rc ON rc.restaurant_model_id = restaurants.id").
			Where("rc.cuisine_model_id IN ?", filter.CuisineIDs).
			Distinct("restaurants.*")
	}
	if filter.OpenAt != nil {
		// Opening hours are zero-padded HH:MM strings, so lexical
		// comparison matches time-of-day ordering.
		now := entity.TimeOfDayFrom(*filter.OpenAt).String()
		query = query.Where("restaurants.opening_time <= ? AND restaurants.closing_time >= ?", now, now)
	}
	if filter.MinRating != nil {
		query = query.Where("restaurants.rating >= ?", *filter.MinRating)
	}

	var restaurantModels []*model.RestaurantModel
	if err := query.Order("restaurants.name ASC").Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to filter restaurants")
	}

	return toRestaurantDomains(restaurantModels)
}

// Create persists a new restaurant with its cuisine associations.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)
	if restaurantM.ID == uuid.Nil {
		restaurantM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRestaurantAlreadyExists
		}

		return errors.Wrap(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// Update modifies an existing restaurant, replacing cuisine associations.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Omit("Cuisines").Save(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRestaurantAlreadyExists
		}

		return errors.Wrap(err, "failed to update restaurant")
	}

	err := repo.db.WithContext(ctx).
		Model(restaurantM).
		Association("Cuisines").
		Replace(restaurantM.Cuisines)
	if err != nil {
		return errors.Wrap(err, "failed to update restaurant cuisines")
	}

	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

func toRestaurantDomains(models []*model.RestaurantModel) ([]*entity.Restaurant, error) {
	restaurants := make([]*entity.Restaurant, 0, len(models))
	for _, restaurantM := range models {
		restaurant, err := toRestaurantDomain(restaurantM)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

// toRestaurantDomain maps the persistence model to a pure domain entity.
func toRestaurantDomain(data *model.RestaurantModel) (*entity.Restaurant, error) {
	opening, err := entity.ParseTimeOfDay(data.OpeningTime)
	if err != nil {
		return nil, errors.Wrap(err, "stored opening time is malformed")
	}
	closing, err := entity.ParseTimeOfDay(data.ClosingTime)
	if err != nil {
		return nil, errors.Wrap(err, "stored closing time is malformed")
	}

	cuisines := make([]entity.Cuisine, 0, len(data.Cuisines))
	for _, cuisineM := range data.Cuisines {
		cuisines = append(cuisines, entity.Cuisine{ID: cuisineM.ID, Name: cuisineM.Name})
	}

	return &entity.Restaurant{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		PhoneNumber: data.PhoneNumber,
		Email:       data.Email,
		OpeningTime: opening,
		ClosingTime: closing,
		Status:      entity.LifecycleStatus(data.Status),
		Rating:      data.Rating,
		CreatorID:   data.CreatorID,
		Cuisines:    cuisines,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

// fromRestaurantDomain maps a domain entity to the persistence model.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	cuisines := make([]model.CuisineModel, 0, len(data.Cuisines))
	for _, cuisine := range data.Cuisines {
		cuisines = append(cuisines, model.CuisineModel{ID: cuisine.ID, Name: cuisine.Name})
	}

	return &model.RestaurantModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		PhoneNumber: data.PhoneNumber,
		Email:       data.Email,
		OpeningTime: data.OpeningTime.String(),
		ClosingTime: data.ClosingTime.String(),
		Status:      data.Status.String(),
		Rating:      data.Rating,
		CreatorID:   data.CreatorID,
		Cuisines:    cuisines,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
