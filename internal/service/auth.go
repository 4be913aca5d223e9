package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Skotchmaster/items_api/internal/events"
	"github.com/Skotchmaster/items_api/internal/hash"
	"github.com/Skotchmaster/items_api/internal/logging"
	"github.com/Skotchmaster/items_api/internal/models"
	"github.com/Skotchmaster/items_api/internal/repo"
	"github.com/Skotchmaster/items_api/internal/tokens"
)

type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (uint, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthService struct {
	Users  UserStore
	Tokens *tokens.Manager
	Events events.Publisher
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	UserID    uint
}

// Register creates the account and returns its id.
func (s *AuthService) Register(ctx context.Context, username, password any) (uint, error) {
	name, pass, err := ValidateRegister(username, password)
	if err != nil {
		return 0, err
	}

	pwHash, err := hash.HashPassword(pass)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.Users.CreateUser(ctx, name, pwHash)
	if err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	publish(ctx, s.Events, events.TopicUser, id, events.Event{
		Type:     events.UserRegistered,
		UserID:   id,
		Username: name,
	})
	return id, nil
}

func (s *AuthService) Login(ctx context.Context, username, password any) (*LoginResult, error) {
	name, pass, err := ValidateLogin(username, password)
	if err != nil {
		return nil, err
	}

	user, err := s.Users.FindUserByUsername(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if !hash.CheckPassword(user.PasswordHash, pass) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	publish(ctx, s.Events, events.TopicUser, user.ID, events.Event{
		Type:     events.UserLoggedIn,
		UserID:   user.ID,
		Username: user.Username,
	})
	return &LoginResult{Token: token, ExpiresAt: exp, UserID: user.ID}, nil
}

func publish(ctx context.Context, p events.Publisher, topic string, userID uint, ev events.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, topic, strconv.FormatUint(uint64(userID), 10), ev); err != nil {
		logging.FromContext(ctx).Warn("publish_event_failed", "topic", topic, "type", ev.Type, "error", err)
	}
}
