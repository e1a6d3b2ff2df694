package auth

import (
	"time"

	"github.com/kartikp-10/weekpulse/internal/team"
	"github.com/kartikp-10/weekpulse/internal/user"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30" example:"jdoe"`
	Email    string `json:"email" binding:"required,email" example:"jdoe@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	Name     string `json:"name" binding:"required,max=50" example:"John Doe"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jdoe@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken          string `json:"refresh_token"`           // Optional: specific token to invalidate
	InvalidateAllSessions bool   `json:"invalidate_all_sessions"` // If true, invalidate all of the user's sessions
}

// TeamRef is the compact team reference embedded in user payloads.
type TeamRef struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	LeaderID uint   `json:"leader_id"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Teams     []TeamRef `json:"teams,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// FilterUserRecord shapes a User row for API responses, never exposing the
// password hash.
func FilterUserRecord(u *user.User, teams []team.Team) UserResponse {
	refs := make([]TeamRef, 0, len(teams))
	for _, t := range teams {
		refs = append(refs, TeamRef{
			ID:       t.ID,
			Name:     t.Name,
			Type:     t.Type,
			LeaderID: t.LeaderID,
		})
	}

	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Teams:     refs,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
