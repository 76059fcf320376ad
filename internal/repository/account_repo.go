package repository

import (
	"errors"

	"stockemdia-backend/internal/apperrors"
	"stockemdia-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(account *model.Account) error
	FindByPhone(phone string) (*model.Account, error)
	FindByID(id uuid.UUID) (*model.Account, error)
	Update(account *model.Account) error
	UpdatePassword(accountID uuid.UUID, hashedPassword string) error
	UpdateTokenVersion(accountID uuid.UUID, version string) error
}

type accountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db}
}

func (r *accountRepo) Create(account *model.Account) error {
	return r.db.Create(account).Error
}

func (r *accountRepo) FindByPhone(phone string) (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("phone = ?", phone).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) FindByID(id uuid.UUID) (*model.Account, error) {
	var account model.Account
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) Update(account *model.Account) error {
	return r.db.Save(account).Error
}

func (r *accountRepo) UpdatePassword(accountID uuid.UUID, hashedPassword string) error {
	return r.db.Model(&model.Account{}).Where("id = ?", accountID).Update("password", hashedPassword).Error
}

func (r *accountRepo) UpdateTokenVersion(accountID uuid.UUID, version string) error {
	return r.db.Model(&model.Account{}).Where("id = ?", accountID).Update("token_version", version).Error
}
