package usecase

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/fadilmartias/career-compass/internal/service"
	"github.com/fadilmartias/career-compass/internal/util"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthUsecase struct {
	users  UserRepo
	tokens *service.TokenService
}

func NewAuthUsecase(users UserRepo, tokens *service.TokenService) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

func (uc *AuthUsecase) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	fields := map[string]string{}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if len(req.Password) < 6 {
		fields["password"] = "must be at least 6 characters"
	}
	if len(strings.TrimSpace(req.Name)) < 2 {
		fields["name"] = "must be at least 2 characters"
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidationError("Invalid input", fields)
	}

	if _, err := uc.users.FindByEmail(req.Email); err == nil {
		return nil, apperror.NewValidationError("Email already registered", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
	}
	if err := uc.users.Create(&user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:  dto.UserInfo{ID: user.ID, Email: user.Email, Name: user.Name},
		Token: token,
	}, nil
}

func (uc *AuthUsecase) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperror.NewValidationError("Email and password are required", nil)
	}

	user, err := uc.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return nil, err
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:  dto.UserInfo{ID: user.ID, Email: user.Email, Name: user.Name},
		Token: token,
	}, nil
}
