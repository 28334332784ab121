package models

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"golang.org/x/crypto/bcrypt"

	"mizan/auth"
)

// User is a client-portal account.
// FirstName may be empty; the navigation bar then shows a fallback avatar.
type User struct {
	GUID         string
	Username     string
	FirstName    string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  sql.NullTime
}

// CreateUsersTableSQL returns the DDL for creating the users table.
const CreateUsersTableSQL = `
CREATE TABLE IF NOT EXISTS users (
    guid          VARCHAR PRIMARY KEY,
    username      VARCHAR NOT NULL UNIQUE,
    first_name    VARCHAR NOT NULL DEFAULT '',
    password_hash VARCHAR NOT NULL,
    is_active     BOOLEAN DEFAULT true,
    created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_login_at TIMESTAMP
);
`

// UserInput contains the data required to open an account.
// Password is plaintext here; it is hashed before storage.
type UserInput struct {
	Username  string
	Password  string
	FirstName string
}

// LoginInput contains credentials for authentication
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthUser is what the page components may see of the account.
func (u *User) AuthUser() auth.User {
	return auth.User{GUID: u.GUID, Username: u.Username, FirstName: u.FirstName}
}

// Cost of 12 keeps logins around a quarter second
const bcryptCost = 12

// HashPassword creates a bcrypt hash of the plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", serr.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against its hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword requires at least 8 characters.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return serr.New("password must be at least 8 characters")
	}
	return nil
}

// ValidateUsername requires 3-50 characters, alphanumeric and underscores only.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return serr.New("username must be at least 3 characters")
	}
	if len(username) > 50 {
		return serr.New("username must be at most 50 characters")
	}
	for _, c := range username {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_') {
			return serr.New("username can only contain letters, numbers, and underscores")
		}
	}
	return nil
}

// CreateUser validates the input, hashes the password and stores the account.
func CreateUser(input UserInput) (*User, error) {
	if err := ValidateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := GetUserByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serr.New("username already exists")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	d, err := conn()
	if err != nil {
		return nil, err
	}

	user := &User{}
	err = d.QueryRow(`
		INSERT INTO users (guid, username, first_name, password_hash)
		VALUES (?, ?, ?, ?)
		RETURNING guid, username, first_name, password_hash, is_active, created_at, last_login_at`,
		uuid.New().String(), input.Username, strings.TrimSpace(input.FirstName), hash,
	).Scan(&user.GUID, &user.Username, &user.FirstName, &user.PasswordHash,
		&user.IsActive, &user.CreatedAt, &user.LastLoginAt)
	if err != nil {
		return nil, serr.Wrap(err, "failed to create user")
	}
	return user, nil
}

// EnsureUser creates the account unless the username is already taken.
func EnsureUser(input UserInput) (*User, error) {
	user, err := GetUserByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	return CreateUser(input)
}

const selectUser = `
	SELECT guid, username, first_name, password_hash, is_active, created_at, last_login_at
	FROM users
`

// GetUserByUsername returns nil, nil if the user is not found.
func GetUserByUsername(username string) (*User, error) {
	return getUser(selectUser+" WHERE username = ?", username)
}

// GetUserByGUID returns nil, nil if the user is not found.
func GetUserByGUID(guid string) (*User, error) {
	return getUser(selectUser+" WHERE guid = ?", guid)
}

func getUser(query string, arg any) (*User, error) {
	d, err := conn()
	if err != nil {
		return nil, err
	}

	user := &User{}
	err = d.QueryRow(query, arg).Scan(&user.GUID, &user.Username, &user.FirstName,
		&user.PasswordHash, &user.IsActive, &user.CreatedAt, &user.LastLoginAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serr.Wrap(err, "failed to get user")
	}
	return user, nil
}

// AuthenticateUser validates credentials.
// Returns nil, nil for unknown users and wrong passwords, disabled or not.
func AuthenticateUser(input LoginInput) (*User, error) {
	user, err := GetUserByUsername(input.Username)
	if err != nil || user == nil {
		return nil, err
	}
	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, nil
	}
	// Only a caller holding the password learns the account is disabled
	if !user.IsActive {
		return nil, serr.New("account is disabled")
	}

	if err := updateLastLogin(user.GUID); err != nil {
		logger.LogErr(err, "failed to update last login", "user_guid", user.GUID)
	}
	return user, nil
}

// SetActive enables or disables an account.
func SetActive(guid string, active bool) error {
	d, err := conn()
	if err != nil {
		return err
	}
	if _, err := d.Exec(`UPDATE users SET is_active = ? WHERE guid = ?`, active, guid); err != nil {
		return serr.Wrap(err, "failed to update user status")
	}
	return nil
}

func updateLastLogin(guid string) error {
	d, err := conn()
	if err != nil {
		return err
	}
	if _, err := d.Exec(`UPDATE users SET last_login_at = CURRENT_TIMESTAMP WHERE guid = ?`, guid); err != nil {
		return serr.Wrap(err, "failed to update last login")
	}
	return nil
}
