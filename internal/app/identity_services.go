package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"
)

// sessionResolver implements the SessionResolver interface over the session
// and user repositories
type sessionResolver struct {
	sessionRepo identity.SessionRepository
	userRepo    identity.UserRepository
	logger      logger.Logger
}

// NewSessionResolver creates a new instance of SessionResolver
func NewSessionResolver(
	sessionRepo identity.SessionRepository,
	userRepo identity.UserRepository,
	logger logger.Logger,
) (identity.SessionResolver, error) {
	return &sessionResolver{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		logger:      logger,
	}, nil
}

// Resolve looks up the user owning the session token. Unknown, expired and
// orphaned tokens all resolve to ErrNoSession.
func (s *sessionResolver) Resolve(ctx context.Context, token string) (*identity.User, error) {
	if token == "" {
		return nil, identity.ErrNoSession
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, identity.ErrNoSession) {
			return nil, identity.ErrNoSession
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.IsExpired(time.Now()) {
		if err := s.sessionRepo.DeleteByToken(ctx, session.Token); err != nil {
			s.logger.Warn("Could not remove expired session: ", err)
		}
		return nil, identity.ErrNoSession
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			s.logger.Warn("Session references missing user ", session.UserID)
			return nil, identity.ErrNoSession
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, nil
}

// sessionIssuer implements the SessionIssuer interface
type sessionIssuer struct {
	sessionRepo identity.SessionRepository
	userRepo    identity.UserRepository
	logger      logger.Logger
}

// NewSessionIssuer creates a new instance of SessionIssuer
func NewSessionIssuer(
	sessionRepo identity.SessionRepository,
	userRepo identity.UserRepository,
	logger logger.Logger,
) (identity.SessionIssuer, error) {
	return &sessionIssuer{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		logger:      logger,
	}, nil
}

// Issue creates a session for the user with the given email, valid for ttl
// from now.
func (s *sessionIssuer) Issue(ctx context.Context, email string, ttl time.Duration) (*identity.Session, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	now := time.Now()
	session := &identity.Session{
		Token:           uuid.NewString(),
		UserID:          user.ID,
		DateTimeCreated: now,
		ExpiresAt:       now.Add(ttl),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("Issued session for user ", user.ID)
	return session, nil
}

// userService implements the UserService interface
type userService struct {
	userRepo    identity.UserRepository
	projectRepo identity.ProjectRepository
	logger      logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(
	userRepo identity.UserRepository,
	projectRepo identity.ProjectRepository,
	logger logger.Logger,
) (identity.UserService, error) {
	return &userService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}, nil
}

// CreateWithProject creates a project with the given name and a user owning
// it. The two writes are not transactional; a failure in between leaves a
// project without an owner.
func (s *userService) CreateWithProject(ctx context.Context, email, projectName string) (*identity.User, error) {
	project := &identity.Project{
		ID:              uuid.NewString(),
		Name:            projectName,
		DateTimeCreated: time.Now(),
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	user := &identity.User{
		ID:              uuid.NewString(),
		Email:           email,
		ProjectID:       &project.ID,
		DateTimeCreated: time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Created user ", user.ID, " with project ", project.ID)
	return user, nil
}
