package user

import (
	"context"
	"fmt"

	"grindsphere/utils"

	"github.com/go-redis/redis/v8"
)

// The selected-category handoff between the home and search screens lives in
// Redis under an explicit per-user key instead of a free-floating shared
// observable. Entries expire on their own if a client never clears them.

func browseKey(userID string) string {
	return utils.BrowseCategoryPrefix + userID
}

// SetBrowseCategory records the category a user picked on one screen for
// another screen to consume.
func (s *DefaultUserService) SetBrowseCategory(ctx context.Context, userID, category string) error {
	if category == "" {
		return ValidationError{Message: "category is required"}
	}
	if err := s.Cache.Set(ctx, browseKey(userID), category, utils.BrowseCategoryTTL).Err(); err != nil {
		return fmt.Errorf("failed to store browse category: %w", err)
	}
	return nil
}

// GetBrowseCategory returns the pending category handoff, or "" when none is set.
func (s *DefaultUserService) GetBrowseCategory(ctx context.Context, userID string) (string, error) {
	val, err := s.Cache.Get(ctx, browseKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read browse category: %w", err)
	}
	return val, nil
}

// ClearBrowseCategory removes the handoff, typically when the search filter
// chip is dismissed.
func (s *DefaultUserService) ClearBrowseCategory(ctx context.Context, userID string) error {
	if err := s.Cache.Del(ctx, browseKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear browse category: %w", err)
	}
	return nil
}
