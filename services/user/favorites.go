package user

import (
	"fmt"
	"slices"
)

// ToggleFavorite adds the service to the user's saved list if absent, or
// removes it if present, and returns the resulting list. The write uses the
// store's atomic set-add/set-remove operators, so concurrent toggles from two
// sessions of the same account cannot lose each other's updates.
func (s *DefaultUserService) ToggleFavorite(userID, serviceID string) ([]string, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	saved := usr.SavedServices
	if slices.Contains(saved, serviceID) {
		if err := s.Repo.RemoveSavedService(userID, serviceID); err != nil {
			return nil, err
		}
		out := make([]string, 0, len(saved))
		for _, id := range saved {
			if id != serviceID {
				out = append(out, id)
			}
		}
		return out, nil
	}

	if err := s.Repo.AddSavedService(userID, serviceID); err != nil {
		return nil, err
	}
	return append(saved, serviceID), nil
}
