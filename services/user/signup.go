package user

import (
	"fmt"
	"time"

	"grindsphere/models"
	"grindsphere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// ValidateSignup checks the signup form locally. A failure here means the
// submission is blocked with zero remote calls issued.
func ValidateSignup(req models.SignupRequest) error {
	if req.Name == "" || req.Surname == "" || req.Email == "" ||
		req.Password == "" || req.ConfirmPassword == "" || req.Role == "" {
		return ValidationError{Message: "please fill in all fields and select a role"}
	}
	if req.Role != models.RoleHustler && req.Role != models.RoleCustomer {
		return ValidationError{Message: "role must be either hustler or customer"}
	}
	if req.Password != req.ConfirmPassword {
		return ValidationError{Message: "passwords do not match"}
	}
	return nil
}

// Register validates the form, creates the account, and writes the profile
// document. Returns an AuthResponse the client routes on by role.
func (s *DefaultUserService) Register(req models.SignupRequest) (*AuthResponse, error) {
	if err := ValidateSignup(req); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ValidationError{Message: "an account with this email already exists"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Surname:       req.Surname,
		Email:         req.Email,
		Role:          req.Role,
		PasswordHash:  string(hashedPassword),
		SavedServices: []string{},
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.Role, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:      userObj.ID,
		Token:   token,
		Name:    userObj.Name,
		Surname: userObj.Surname,
		Email:   userObj.Email,
		Role:    userObj.Role,
	}, nil
}
