package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/logger"
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/fadilmartias/career-compass/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserUsecase struct {
	users    UserRepo
	jobs     JobAnalysisRepo
	skills   SkillRepo
	resumes  ResumeRepo
	progress ProgressRepo
	log      *logger.Logger
}

func NewUserUsecase(users UserRepo, jobs JobAnalysisRepo, skills SkillRepo, resumes ResumeRepo, progress ProgressRepo, log *logger.Logger) *UserUsecase {
	return &UserUsecase{users: users, jobs: jobs, skills: skills, resumes: resumes, progress: progress, log: log}
}

// findUser maps a missing row to 404 and lets every other repository
// failure surface as-is.
func (uc *UserUsecase) findUser(userID uuid.UUID) (*model.User, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return user, nil
}

func (uc *UserUsecase) Profile(userID uuid.UUID) (*dto.UserInfo, error) {
	user, err := uc.findUser(userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (uc *UserUsecase) UpdateProfile(userID uuid.UUID, req dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > 255 {
		return nil, apperror.NewValidationError("Name is required", nil)
	}

	user, err := uc.findUser(userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return &dto.UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (uc *UserUsecase) ChangePassword(userID uuid.UUID, req dto.ChangePasswordRequest) error {
	if req.CurrentPassword == "" {
		return apperror.NewValidationError("Current password is required", nil)
	}
	if len(req.NewPassword) < 6 {
		return apperror.NewValidationError("New password must be at least 6 characters", nil)
	}

	user, err := uc.findUser(userID)
	if err != nil {
		return err
	}

	if !util.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return fiber.NewError(fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := util.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return uc.users.Update(user)
}

// ExportData assembles everything the user owns into one document.
func (uc *UserUsecase) ExportData(userID uuid.UUID) (*dto.ExportData, error) {
	user, err := uc.findUser(userID)
	if err != nil {
		return nil, err
	}

	analyses, err := uc.jobs.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	skills, err := uc.skills.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	resumes, err := uc.resumes.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	progress, err := uc.progress.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	return &dto.ExportData{
		User: dto.UserInfo{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			CreatedAt: user.CreatedAt,
		},
		JobAnalyses:            analyses,
		Skills:                 skills,
		Resumes:                resumes,
		RecommendationProgress: progress,
		ExportedAt:             time.Now(),
	}, nil
}

// DeleteAccount re-verifies the password, then removes the user row;
// the cascading foreign keys take everything else with it.
func (uc *UserUsecase) DeleteAccount(userID uuid.UUID, req dto.DeleteAccountRequest) error {
	if req.Password == "" {
		return apperror.NewValidationError("Password is required", nil)
	}

	user, err := uc.findUser(userID)
	if err != nil {
		return err
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		return fiber.NewError(fiber.StatusUnauthorized, "Incorrect password")
	}

	if err := uc.users.Delete(userID); err != nil {
		return err
	}
	uc.log.Info("account deleted", "user_id", userID)
	return nil
}
