package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zenai/backend/domain"
	"github.com/zenai/backend/repository"
)

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	secret   []byte
	issuer   string
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func New(users repository.UserRepository, sessions repository.SessionRepository, secret, issuer string, ttl time.Duration, logger *zap.Logger) *UseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		secret:   []byte(secret),
		issuer:   issuer,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Result pairs the authenticated user with its bearer token.
type Result struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates a fresh account and starts its session. Duplicate
// usernames are rejected before anything is written.
func (uc *UseCase) Register(ctx context.Context, username, credential string) (*Result, error) {
	username = strings.TrimSpace(username)
	if username == "" || credential == "" {
		return nil, domain.ErrEmptyCredentials
	}

	if _, err := uc.users.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	}

	user := &domain.User{
		ID:         uuid.NewString(),
		Username:   username,
		Credential: credential,
		JoinedAt:   uc.now(),
		XP:         0,
		Level:      1,
		Streak:     0,
		BestStreak: 0,
	}
	if err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("user_id", user.ID))
	return uc.startSession(ctx, user)
}

// Login checks the username/credential pair and starts a session.
func (uc *UseCase) Login(ctx context.Context, username, credential string) (*Result, error) {
	username = strings.TrimSpace(username)
	if username == "" || credential == "" {
		return nil, domain.ErrEmptyCredentials
	}

	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil || user.Credential != credential {
		return nil, domain.ErrBadCredentials
	}

	return uc.startSession(ctx, user)
}

// Logout clears the active session pointer.
func (uc *UseCase) Logout(ctx context.Context) error {
	return uc.sessions.Clear(ctx)
}

// CurrentUser resolves the active session to its user record.
func (uc *UseCase) CurrentUser(ctx context.Context) (*domain.User, error) {
	session, err := uc.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	return uc.users.GetByID(ctx, session.UserID)
}

func (uc *UseCase) startSession(ctx context.Context, user *domain.User) (*Result, error) {
	now := uc.now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := uc.signToken(user.ID, now)
	if err != nil {
		return nil, err
	}
	return &Result{User: user.Sanitized(), Token: token}, nil
}

func (uc *UseCase) signToken(userID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     uc.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(uc.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.secret)
}
