package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kartikp-10/weekpulse/config"
	"github.com/kartikp-10/weekpulse/internal/access"
	"github.com/kartikp-10/weekpulse/internal/middleware"
	"github.com/kartikp-10/weekpulse/internal/team"
	"github.com/kartikp-10/weekpulse/internal/user"
	"github.com/kartikp-10/weekpulse/pkg/responses"
	"github.com/kartikp-10/weekpulse/pkg/token"
	"github.com/kartikp-10/weekpulse/pkg/validator"
	"github.com/kartikp-10/weekpulse/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	teams  team.TeamRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, teams team.TeamRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		teams:  teams,
		config: cfg,
	}
}

func (ac *AuthController) generateAndSaveTokens(u *user.User) (string, string, error) {
	accessToken, err := token.GenerateAccessToken(u.ID, u.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken(u.ID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &user.RefreshToken{
		UserID:    u.ID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}

	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user with the default member role and returns a token pair.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Registration details"
// @Success      201   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ValidationErrorResponse
// @Failure      409   {object} responses.ErrorResponse
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationErrors(c, validator.ParseError(err))
		return
	}

	byEmail, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.InternalServerError(c, "Failed to check existing users")
		return
	}
	if byEmail != nil {
		responses.Conflict(c, "User with this email already exists")
		return
	}

	byUsername, err := ac.repo.GetUserByUsername(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.InternalServerError(c, "Failed to check existing users")
		return
	}
	if byUsername != nil {
		responses.Conflict(c, "User with this username already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to process password")
		return
	}

	// Role is assigned server-side; promotion happens through admin tooling.
	u := user.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Role:     string(access.RoleMember),
	}

	if err := ac.repo.CreateUser(&u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, "User with this email or username already exists")
			return
		}
		responses.InternalServerError(c, "Failed to create user")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(&u)
	if err != nil {
		logrus.WithError(err).Error("token issuance failed after registration")
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(&u, nil),
	})
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400  {object} responses.ValidationErrorResponse
// @Failure      401  {object} responses.ErrorResponse
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationErrors(c, validator.ParseError(err))
		return
	}

	u, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		// Same message for unknown email and bad password.
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(u)
	if err != nil {
		logrus.WithError(err).Error("token issuance failed at login")
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}

	teams, err := ac.teams.GetTeamsForUser(u.ID)
	if err != nil {
		teams = nil
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u, teams),
	})
}

// RefreshToken godoc
// @Summary      Exchange a refresh token for a new token pair
// @Description  The presented refresh token is revoked and replaced (rotation).
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        token  body  RefreshTokenRequest  true  "Refresh token"
// @Success      200  {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      401  {object} responses.ErrorResponse
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationErrors(c, validator.ParseError(err))
		return
	}

	claims, err := token.ValidateToken(req.RefreshToken, ac.config.JWT.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.Unauthorized(c, "Refresh token is revoked or unknown")
		return
	}

	u, err := ac.repo.GetUserByID(claims.UserID)
	if err != nil {
		responses.Unauthorized(c, "User no longer exists")
		return
	}

	if err := ac.repo.InvalidateRefreshToken(stored.Token); err != nil {
		responses.InternalServerError(c, "Failed to rotate refresh token")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(u)
	if err != nil {
		logrus.WithError(err).Error("token issuance failed at refresh")
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Token refreshed successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u, nil),
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the supplied refresh token, or every session when requested.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body  LogoutRequest  false  "Logout options"
// @Success      200  {object} responses.SuccessResponse
// @Security     ApiKeyAuth
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req LogoutRequest
	// Body is optional; an empty logout still succeeds.
	_ = c.ShouldBindJSON(&req)

	if req.InvalidateAllSessions {
		if err := ac.repo.InvalidateAllRefreshTokensForUser(userID); err != nil {
			responses.InternalServerError(c, "Failed to invalidate sessions")
			return
		}
	} else if req.RefreshToken != "" {
		if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
			responses.InternalServerError(c, "Failed to invalidate refresh token")
			return
		}
	}

	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// GetProfile godoc
// @Summary      Get the caller's profile with team references
// @Tags         Auth
// @Produce      json
// @Success      200  {object} responses.SuccessResponse{data=UserResponse}
// @Failure      401  {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.Unauthorized(c, "User no longer exists")
		return
	}

	teams, err := ac.teams.GetTeamsForUser(u.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team memberships")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", FilterUserRecord(u, teams))
}

// ListUsers godoc
// @Summary      List all users (admin)
// @Tags         Admin
// @Produce      json
// @Success      200  {object} responses.SuccessResponse{data=[]UserResponse}
// @Failure      403  {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /admin/users [get]
func (ac *AuthController) ListUsers(c *gin.Context) {
	users, err := ac.repo.ListUsers()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch users")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FilterUserRecord(&users[i], nil))
	}

	responses.SendSuccess(c, http.StatusOK, "Users retrieved successfully", out)
}
