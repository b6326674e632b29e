package repositories

import (
	"errors"
	"fmt"
	"strings"

	"herbal/internal/models"

	"gorm.io/gorm"
)

// GORMPlantRepository is a GORM implementation of PlantRepository.
//
// SQLite's LOWER() folds ASCII only, so on SQLite the text filters load the
// catalog and match in Go; other drivers filter in SQL.
type GORMPlantRepository struct {
	db       *gorm.DB
	foldInGo bool
}

// NewGORMPlantRepository creates a new instance of GORMPlantRepository.
func NewGORMPlantRepository(db *gorm.DB) *GORMPlantRepository {
	return &GORMPlantRepository{
		db:       db,
		foldInGo: db.Dialector.Name() == "sqlite",
	}
}

// GetAll retrieves all plants from the database.
func (r *GORMPlantRepository) GetAll() ([]models.Plant, error) {
	return r.find("get all plants", r.db)
}

// GetByID retrieves a single plant by its ID from the database.
func (r *GORMPlantRepository) GetByID(id uint) (*models.Plant, error) {
	var plant models.Plant
	if err := r.db.First(&plant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("plant with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get plant by ID %d: %w", id, err)
	}
	return &plant, nil
}

// Search retrieves plants whose searchable columns contain query.
func (r *GORMPlantRepository) Search(query string) ([]models.Plant, error) {
	if r.foldInGo {
		return r.filter("search plants", searchMatcher(query))
	}
	pattern := likePattern(query)
	tx := r.db.Where(
		"LOWER(common_name) LIKE ? ESCAPE '\\' OR LOWER(botanical_name) LIKE ? ESCAPE '\\' OR "+
			"LOWER(medicinal_uses) LIKE ? ESCAPE '\\' OR LOWER(region) LIKE ? ESCAPE '\\' OR "+
			"LOWER(category) LIKE ? ESCAPE '\\'",
		pattern, pattern, pattern, pattern, pattern,
	)
	return r.find("search plants", tx)
}

// GetByCategory retrieves plants with exactly the given category, ignoring case.
func (r *GORMPlantRepository) GetByCategory(category string) ([]models.Plant, error) {
	if r.foldInGo {
		return r.filter("get plants by category", categoryMatcher(category))
	}
	return r.find("get plants by category", r.db.Where("LOWER(category) = ?", strings.ToLower(category)))
}

// GetByRegion retrieves plants whose region contains region, ignoring case.
func (r *GORMPlantRepository) GetByRegion(region string) ([]models.Plant, error) {
	if r.foldInGo {
		return r.filter("get plants by region", regionMatcher(region))
	}
	return r.find("get plants by region", r.db.Where("LOWER(region) LIKE ? ESCAPE '\\'", likePattern(region)))
}

// Create inserts a plant; the database assigns its ID.
func (r *GORMPlantRepository) Create(plant *models.Plant) error {
	plant.ID = 0
	if err := r.db.Create(plant).Error; err != nil {
		return fmt.Errorf("failed to create plant: %w", err)
	}
	return nil
}

// Count returns the number of stored plants.
func (r *GORMPlantRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Plant{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count plants: %w", err)
	}
	return n, nil
}

func (r *GORMPlantRepository) find(op string, tx *gorm.DB) ([]models.Plant, error) {
	plants := []models.Plant{}
	if err := tx.Order("id").Find(&plants).Error; err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return plants, nil
}

// filter loads every plant in id order and keeps those matching match.
func (r *GORMPlantRepository) filter(op string, match func(models.Plant) bool) ([]models.Plant, error) {
	all, err := r.find(op, r.db)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, p := range all {
		if match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a lower-cased substring LIKE pattern with wildcards escaped.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
