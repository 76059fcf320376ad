package service_test

import (
	"testing"

	"stockemdia-backend/internal/apperrors"
	"stockemdia-backend/internal/model"
	"stockemdia-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByPhone(phone string) (*model.Account, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByID(id uuid.UUID) (*model.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdatePassword(accountID uuid.UUID, hashedPassword string) error {
	args := m.Called(accountID, hashedPassword)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateTokenVersion(accountID uuid.UUID, version string) error {
	args := m.Called(accountID, version)
	return args.Error(0)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	repo    *MockAccountRepository
	service service.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.repo = new(MockAccountRepository)
	s.service = service.NewAuthService(s.repo)
}

func (s *AuthServiceTestSuite) validRequest() service.RegisterRequest {
	return service.RegisterRequest{
		Name:         "Maria dos Santos",
		BusinessName: "Loja da Maria",
		Phone:        "923456789",
		Password:     "segredo1",
	}
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	req := s.validRequest()

	s.repo.On("FindByPhone", req.Phone).Return(nil, apperrors.ErrAccountNotFound).Once()
	s.repo.On("Create", mock.MatchedBy(func(a *model.Account) bool {
		return a.Phone == req.Phone &&
			a.Password != req.Password && // stored hashed, never plain
			a.CheckPassword(req.Password) &&
			a.TokenVersion != ""
	})).Return(nil).Once()

	resp, err := s.service.Register(req)

	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(req.Phone, resp.Account.Phone)
	s.Equal(req.BusinessName, resp.Account.BusinessName)
	s.repo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRegister_RejectsBadPhone() {
	for _, phone := range []string{"823456789", "92345678", "9234567890", "9abc56789", ""} {
		req := s.validRequest()
		req.Phone = phone

		_, err := s.service.Register(req)

		s.Require().Error(err, "phone %q must be rejected", phone)
		s.ErrorIs(err, apperrors.ErrValidation)
	}
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything)
}

func (s *AuthServiceTestSuite) TestRegister_RejectsShortPassword() {
	req := s.validRequest()
	req.Password = "12345"

	_, err := s.service.Register(req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything)
}

func (s *AuthServiceTestSuite) TestRegister_RejectsDuplicatePhone() {
	req := s.validRequest()
	existing := &model.Account{Phone: req.Phone}

	s.repo.On("FindByPhone", req.Phone).Return(existing, nil).Once()

	_, err := s.service.Register(req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrPhoneTaken)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	account := &model.Account{
		BaseModel:    model.BaseModel{ID: uuid.New()},
		Phone:        "923456789",
		Name:         "Maria dos Santos",
		BusinessName: "Loja da Maria",
	}
	s.Require().NoError(account.SetPassword("segredo1"))

	s.repo.On("FindByPhone", account.Phone).Return(account, nil).Once()
	s.repo.On("UpdateTokenVersion", account.ID, mock.AnythingOfType("string")).Return(nil).Once()

	resp, err := s.service.Login(account.Phone, "segredo1")

	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(account.Phone, resp.Account.Phone)
	s.repo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	account := &model.Account{BaseModel: model.BaseModel{ID: uuid.New()}, Phone: "923456789"}
	s.Require().NoError(account.SetPassword("segredo1"))

	s.repo.On("FindByPhone", account.Phone).Return(account, nil).Once()

	_, err := s.service.Login(account.Phone, "errada99")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
	s.repo.AssertNotCalled(s.T(), "UpdateTokenVersion", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownPhone() {
	s.repo.On("FindByPhone", "911111111").Return(nil, apperrors.ErrAccountNotFound).Once()

	_, err := s.service.Login("911111111", "whatever")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
