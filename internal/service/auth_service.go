package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"film_api/internal/model"
	"film_api/internal/repository"
	"film_api/internal/utils"

	"github.com/rs/zerolog"
)

// AuthService provides registration, login and admin bootstrap
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*model.User, error)
	Login(ctx context.Context, username, password string) (string, *model.User, error)
	BootstrapAdmin(ctx context.Context, username, password string) (bool, error)
}

// unknownUserHash is compared on logins for missing users so both failure
// paths cost one bcrypt comparison
var unknownUserHash = sync.OnceValue(func() string {
	hash, _ := utils.HashPassword("film-api-unknown-user")
	return hash
})

type authService struct {
	userRepo      repository.UserRepository
	jwtUtil       *utils.JWTUtil
	log           zerolog.Logger
	checkPassword func(password, hash string) bool
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, log zerolog.Logger) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtUtil:       jwtUtil,
		log:           log.With().Str("component", "auth").Logger(),
		checkPassword: utils.CheckPasswordHash,
	}
}

// Register creates an account with a fixed role. The username is stored lowercased.
func (s *authService) Register(ctx context.Context, username, password, role string) (*model.User, error) {
	if err := utils.ValidateCredentials(username, password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     utils.NormalizeUsername(username),
		PasswordHash: hashedPassword,
		Role:         role,
	}

	// users.username is unique; a taken name comes back as ErrDuplicate
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("user registered")
	return user, nil
}

// Login verifies credentials and issues a token. Unknown usernames and wrong
// passwords both return ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, utils.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.checkPassword(password, unknownUserHash())
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("error finding user by username: %w", err)
	}

	if !s.checkPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.Identity())
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// BootstrapAdmin creates the initial admin when none exists. It reports
// whether an account was created and is a no-op without credentials.
func (s *authService) BootstrapAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	has, err := s.userRepo.HasAdmin(ctx)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}

	user, err := s.Register(ctx, username, password, model.RoleAdmin)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			s.log.Warn().Str("username", utils.NormalizeUsername(username)).Msg("initial admin username is taken by a non-admin account")
			return false, nil
		}
		return false, fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("initial admin created")
	return true, nil
}
