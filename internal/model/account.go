package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account is a single tenant: every product and transaction is partitioned
// by its ID. Accounts register with an Angolan mobile number.
type Account struct {
	BaseModel
	Phone        string `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone" validate:"required,ao_phone"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Name         string `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=3"`
	BusinessName string `gorm:"type:varchar(255);not null" json:"business_name" validate:"required,min=2"`
	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"` // For single session enforcement
}

// SetPassword hashes and sets the account's password
func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (a *Account) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
	return err == nil
}

// AccountResponse is used for API responses (without sensitive data)
type AccountResponse struct {
	ID           uuid.UUID `json:"id"`
	Phone        string    `json:"phone"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name"`
}

// ToResponse converts Account to AccountResponse
func (a *Account) ToResponse() AccountResponse {
	return AccountResponse{
		ID:           a.ID,
		Phone:        a.Phone,
		Name:         a.Name,
		BusinessName: a.BusinessName,
	}
}
