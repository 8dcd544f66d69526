package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
	utils "local-market/pkg"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidAdminKey    = errors.New("invalid admin secret key")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	userRepo       repo.UserRepository
	adminSecretKey string
}

func NewAuthService(userRepo repo.UserRepository, adminSecretKey string) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		adminSecretKey: adminSecretKey,
	}
}

func (s *AuthService) Register(input *entity.RegisterInput) (string, error) {
	existing, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUserExists
	}

	// Admin accounts are gated behind a shared secret.
	if input.UserType == entity.UserTypeAdmin && input.AdminSecretKey != s.adminSecretKey {
		return "", ErrInvalidAdminKey
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return "", err
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
		UserType:     input.UserType,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return "", err
	}

	return utils.GenerateToken(user)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateToken(user)
}

func (s *AuthService) GetProfile(userID uuid.UUID) (*entity.UserResp, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &entity.UserResp{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		UserType: user.UserType,
	}, nil
}

func (s *AuthService) UpdateProfile(userID uuid.UUID, input entity.UpdateProfileInput) error {
	return s.userRepo.UpdateProfile(userID, input.Username, input.Email)
}
