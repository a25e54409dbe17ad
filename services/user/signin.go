package user

import (
	"context"
	"fmt"

	"grindsphere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials and issues a fresh token, replacing the
// stored token hash for the account.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSet(userRec.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// Drop any stale cached hash so the old token stops working immediately.
	invalidateAuthCache(userRec.ID)

	return &AuthResponse{
		ID:            userRec.ID,
		Token:         token,
		Name:          userRec.Name,
		Surname:       userRec.Surname,
		Email:         userRec.Email,
		Role:          userRec.Role,
		ProfilePicURL: userRec.ProfilePicURL,
	}, nil
}

// SignOut revokes the account's current token.
func (s *DefaultUserService) SignOut(userID string) error {
	if err := s.Repo.UpdateSet(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	invalidateAuthCache(userID)
	return nil
}

// invalidateAuthCache removes the cached token hash, when the auth cache has
// been initialized.
func invalidateAuthCache(userID string) {
	if utils.AuthCacheClient == nil {
		return
	}
	key := utils.AuthCachePrefix + userID
	if err := utils.AuthCacheClient.Del(context.Background(), key).Err(); err != nil {
		utils.GetLogger().Warn("failed to clear auth cache", zap.String("userID", userID), zap.Error(err))
	}
}
