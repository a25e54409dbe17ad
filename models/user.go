package models

import "time"

// Account roles. A hustler publishes services; a customer books them.
const (
	RoleHustler  = "hustler"
	RoleCustomer = "customer"
)

// User is the profile document created at signup and mutated by
// profile-picture uploads and favorite toggles.
type User struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Surname       string    `bson:"surname" json:"surname"`
	Email         string    `bson:"email" json:"email"`
	Role          string    `bson:"role" json:"role"`
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	ProfilePicURL string    `bson:"profilePicUrl" json:"profilePicUrl,omitempty"`
	SavedServices []string  `bson:"savedServices" json:"savedServices"`
	FCMToken      string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash     string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DisplayName is the name shown to chat counterparts and on reviews.
func (u *User) DisplayName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}

// SignupRequest carries the signup form fields.
type SignupRequest struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
