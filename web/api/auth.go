package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"mizan/models"
)

// UserOutput is the public view of an account.
type UserOutput struct {
	GUID        string     `json:"guid"`
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func userOutput(u *models.User) UserOutput {
	out := UserOutput{GUID: u.GUID, Username: u.Username, FirstName: u.FirstName, CreatedAt: u.CreatedAt}
	if u.LastLoginAt.Valid {
		t := u.LastLoginAt.Time
		out.LastLoginAt = &t
	}
	return out
}

// AuthResponse contains the user and token returned on successful authentication
type AuthResponse struct {
	User  UserOutput `json:"user"`
	Token string     `json:"token"`
}

// Login authenticates a user and returns a JWT token.
// POST /api/v1/auth/login
//
// Request body:
//
//	{ "username": "client", "password": "SecurePass123!" }
//
// Success (200):
//
//	{ "success": true, "data": { "user": {...}, "token": "..." } }
//
// Errors:
//   - 400: Missing username or password
//   - 401: Invalid credentials
//   - 403: Account is disabled
func Login(ctx rweb.Context) error {
	var input models.LoginInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		return WriteError(ctx, http.StatusBadRequest, "invalid request body")
	}

	if input.Username == "" {
		return WriteError(ctx, http.StatusBadRequest, "username is required")
	}
	if input.Password == "" {
		return WriteError(ctx, http.StatusBadRequest, "password is required")
	}

	user, err := models.AuthenticateUser(input)
	if err != nil {
		if strings.Contains(err.Error(), "disabled") {
			return WriteError(ctx, http.StatusForbidden, "account is disabled")
		}
		logger.LogErr(serr.Wrap(err, "authentication error"), "username", input.Username)
		return WriteError(ctx, http.StatusInternalServerError, "authentication error")
	}

	if user == nil {
		// Don't reveal whether the username exists
		return WriteError(ctx, http.StatusUnauthorized, "invalid credentials")
	}

	token, err := models.GenerateToken(user)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to generate token"), "user_guid", user.GUID)
		return WriteError(ctx, http.StatusInternalServerError, "failed to generate token")
	}

	return WriteSuccess(ctx, http.StatusOK, AuthResponse{User: userOutput(user), Token: token})
}

// GetCurrentUser returns the authenticated user's profile.
// GET /api/v1/auth/me
//
// The token is read from "Authorization: Bearer <jwt>" or the session cookie.
//
// Errors:
//   - 401: Missing or invalid token, or the account no longer exists
func GetCurrentUser(ctx rweb.Context) error {
	userGUID := GetCurrentUserGUID(ctx)
	if userGUID == "" {
		return WriteError(ctx, http.StatusUnauthorized, "authentication required")
	}

	user, err := models.GetUserByGUID(userGUID)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get user"), "user_guid", userGUID)
		return WriteError(ctx, http.StatusInternalServerError, "failed to get user")
	}
	if user == nil {
		return WriteError(ctx, http.StatusUnauthorized, "user not found")
	}

	return WriteSuccess(ctx, http.StatusOK, userOutput(user))
}

// GetCurrentUserGUID extracts the user GUID set by the auth middleware.
// Returns empty string if not authenticated.
func GetCurrentUserGUID(ctx rweb.Context) string {
	guid, _ := ctx.Get("user_guid").(string)
	return guid
}
