package repository

import (
	"errors"

	"stockemdia-backend/internal/apperrors"
	"stockemdia-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(accountID uuid.UUID) ([]model.Product, error)
	Search(accountID uuid.UUID, query string) ([]model.Product, error)
	FindByID(accountID, id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// FindAll returns the account's catalogue in insertion order.
func (r *productRepo) FindAll(accountID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("account_id = ?", accountID).Order("created_at ASC").Find(&products).Error
	return products, err
}

// Search is a case-insensitive substring match on the product name.
func (r *productRepo) Search(accountID uuid.UUID, query string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("account_id = ? AND name ILIKE ?", accountID, "%"+query+"%").
		Order("created_at ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(accountID, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ? AND account_id = ?", id, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}
