// internal/database/repositories.go
package database

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/javajoker/shelflife/internal/models"
)

const preferencesRowID = 1

// ProductRepository stores the product list as rows ordered by position.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) LoadProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("position ASC").Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	return products, nil
}

// SaveProducts rewrites the table to match the given ordered snapshot.
func (r *ProductRepository) SaveProducts(products []models.Product) error {
	return WithTransaction(r.db, func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error; err != nil {
			return errors.Wrap(err, "clear products")
		}
		if len(products) == 0 {
			return nil
		}
		if err := tx.Create(&products).Error; err != nil {
			return errors.Wrap(err, "insert products")
		}
		return nil
	})
}

type PreferencesRepository struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// LoadPreferences returns nil when nothing has been saved yet.
func (r *PreferencesRepository) LoadPreferences() (*models.Preferences, error) {
	var prefs models.Preferences
	err := r.db.First(&prefs, preferencesRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "query preferences")
	}
	return &prefs, nil
}

func (r *PreferencesRepository) SavePreferences(prefs *models.Preferences) error {
	prefs.ID = preferencesRowID
	if err := r.db.Save(prefs).Error; err != nil {
		return errors.Wrap(err, "save preferences")
	}
	return nil
}
