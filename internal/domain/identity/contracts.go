package identity

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNoSession is returned when a token resolves to no live session.
	ErrNoSession = errors.New("no active session")
	// ErrUserNotFound is returned when a user lookup matches nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrProjectNotFound is returned when a project lookup matches nothing.
	ErrProjectNotFound = errors.New("project not found")
)

// SessionResolver defines methods for resolving a session token to a user.
type SessionResolver interface {
	// Resolve looks up the user owning the session token. It returns
	// ErrNoSession for unknown or expired tokens.
	Resolve(ctx context.Context, token string) (*User, error)
}

// SessionIssuer defines methods for minting sessions.
type SessionIssuer interface {
	// Issue creates a session for the user with the given email, valid for
	// ttl from now, and returns it.
	Issue(ctx context.Context, email string, ttl time.Duration) (*Session, error)
}

// UserService defines methods for managing users and their projects.
type UserService interface {
	// CreateWithProject creates a project with the given name and a user
	// owning it. It returns the created user.
	CreateWithProject(ctx context.Context, email, projectName string) (*User, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// GetByID retrieves a User from the database by ID
	GetByID(ctx context.Context, userID string) (*User, error)
	// GetByEmail retrieves a User from the database by email
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// ProjectRepository defines the interface for Project-related operations
type ProjectRepository interface {
	// Create adds a new Project to the database
	Create(ctx context.Context, project *Project) error
	// GetByID retrieves a Project from the database by ID
	GetByID(ctx context.Context, projectID string) (*Project, error)
}

// SessionRepository defines the interface for Session-related operations
type SessionRepository interface {
	// Create adds a new Session to the database
	Create(ctx context.Context, session *Session) error
	// GetByToken retrieves a Session from the database by token
	GetByToken(ctx context.Context, token string) (*Session, error)
	// DeleteByToken deletes a Session in the database by token
	DeleteByToken(ctx context.Context, token string) error
}
