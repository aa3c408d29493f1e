package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/avelez/quizbank-be/internal/models"
)

// ErrUsernameTaken is returned when a registration collides with an
// existing username.
var ErrUsernameTaken = errors.New("username already exists")

// ErrUserNotFound is returned when a user lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned for any authentication failure. The
// cause (unknown user vs. wrong password) is carried in the wrapping
// message for logs but must never reach the client.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(username, password string) (models.User, error)
	Authenticate(username, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides business logic for user accounts.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("%w: id %s", ErrUserNotFound, id)
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByUsername retrieves a single user by their username, including the
// password hash.
func (s *UserService) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, username)
		}
		return models.User{}, err
	}
	return user, nil
}

// Register creates a new user with a hashed password. The existence
// pre-check gives a fast conflict answer; the UNIQUE constraint on
// username is the actual enforcement, so a lost race still maps to
// ErrUsernameTaken.
func (s *UserService) Register(username, password string) (models.User, error) {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM users WHERE username = ?", username).Scan(&exists)
	if err == nil {
		return models.User{}, ErrUsernameTaken
	}
	if err != sql.ErrNoRows {
		return models.User{}, err
	}

	return s.createUser(username, password)
}

// createUser hashes the password and inserts the row. A UNIQUE violation
// on username maps to ErrUsernameTaken here so registrations that lose
// the check-then-insert race still get a conflict answer.
func (s *UserService) createUser(username, password string) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashedPassword),
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username, password_hash) VALUES(?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Username, user.PasswordHash)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a user's credentials.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: user not found", ErrInvalidCredentials)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: wrong password", ErrInvalidCredentials)
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}
