package service

import (
	"errors"

	"stockemdia-backend/internal/apperrors"
	"stockemdia-backend/internal/model"
	"stockemdia-backend/internal/repository"
	"stockemdia-backend/pkg/jwt"
	"stockemdia-backend/pkg/validator"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Login(phone, password string) (*AuthResponse, error)
	ResetPassword(phone, oldPassword, newPassword string) error
	ValidateToken(tokenString string) (*model.AccountResponse, error)
}

type RegisterRequest struct {
	Name         string `json:"name" validate:"required,min=3"`
	BusinessName string `json:"business_name" validate:"required,min=2"`
	Phone        string `json:"phone" validate:"required,ao_phone"`
	Password     string `json:"password" validate:"required,min=6"`
}

type AuthResponse struct {
	Token   string                `json:"token"`
	Account model.AccountResponse `json:"account"`
}

type authService struct {
	accountRepo repository.AccountRepository
}

func NewAuthService(accountRepo repository.AccountRepository) AuthService {
	return &authService{accountRepo: accountRepo}
}

func (s *authService) Register(req RegisterRequest) (*AuthResponse, error) {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, apperrors.ErrValidation
	}

	// Phone numbers identify accounts, duplicates are rejected up front.
	if existing, err := s.accountRepo.FindByPhone(req.Phone); err == nil && existing != nil {
		return nil, apperrors.ErrPhoneTaken
	}

	account := &model.Account{
		Phone:        req.Phone,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		TokenVersion: uuid.New().String(),
	}
	if err := account.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(account.ID, account.Phone, account.Name, account.BusinessName, account.TokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &AuthResponse{Token: token, Account: account.ToResponse()}, nil
}

func (s *authService) Login(phone, password string) (*AuthResponse, error) {
	account, err := s.accountRepo.FindByPhone(phone)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !account.CheckPassword(password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Single Session: a fresh token version invalidates earlier logins.
	account.TokenVersion = uuid.New().String()
	if err := s.accountRepo.UpdateTokenVersion(account.ID, account.TokenVersion); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(account.ID, account.Phone, account.Name, account.BusinessName, account.TokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &AuthResponse{Token: token, Account: account.ToResponse()}, nil
}

func (s *authService) ResetPassword(phone, oldPassword, newPassword string) error {
	account, err := s.accountRepo.FindByPhone(phone)
	if err != nil {
		return apperrors.ErrAccountNotFound
	}

	if !account.CheckPassword(oldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if err := account.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	return s.accountRepo.UpdatePassword(account.ID, account.Password)
}

func (s *authService) ValidateToken(tokenString string) (*model.AccountResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindByID(claims.AccountID)
	if err != nil {
		return nil, apperrors.ErrAccountNotFound
	}

	// Check against DB for strict session (TokenVersion)
	if account.TokenVersion != claims.TokenVersion {
		return nil, errors.New("session expired (logged in on another device)")
	}

	resp := account.ToResponse()
	return &resp, nil
}
