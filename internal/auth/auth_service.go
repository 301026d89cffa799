package auth

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	autherrors "go-employee/internal/auth/errors"
	"go-employee/internal/domain"
	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, principal domain.Principal) error
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
	Me(ctx context.Context, principal domain.Principal) (MeResponse, error)
	// EnsureAccount creates the account with the given roles unless the email is already taken.
	EnsureAccount(ctx context.Context, email, password string, roles []string) error
}

// TokenConfig controls access token signing. Now defaults to time.Now.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

type accessClaims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

type service struct {
	repo   Repository
	tokens TokenStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, tokens TokenStore, cfg TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	return &service{
		repo:   repo,
		tokens: tokens,
		secret: cfg.Secret,
		ttl:    cfg.TTL,
		now:    now,
		logger: l,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	email := normalizeEmail(req.Email)
	log := contextutil.GetLogger(ctx, s.logger)

	account, err := s.repo.FindForLoginByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Info("login rejected: unknown email")
			return TokenResponse{}, autherrors.ErrInvalidCredentials
		}
		log.Error("login lookup failed", zap.Error(err))
		return TokenResponse{}, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		log.Info("login rejected: wrong password", zap.Int64("account_id", account.ID))
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}
	if !account.Enabled {
		log.Info("login rejected: account disabled", zap.Int64("account_id", account.ID))
		return TokenResponse{}, autherrors.ErrAccountDisabled
	}

	token, err := s.issueToken(*account)
	if err != nil {
		log.Error("sign access token failed", zap.Error(err))
		return TokenResponse{}, autherrors.TokenGenerationFailed(err)
	}

	log.Info("login succeeded", zap.Int64("account_id", account.ID))
	return TokenResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int64(s.ttl / time.Second),
	}, nil
}

func (s *service) issueToken(account UserAccount) (string, error) {
	now := s.now()
	roles := account.RoleNames()
	slices.Sort(roles)

	claims := accessClaims{
		Email: account.Email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(account.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *service) Authenticate(ctx context.Context, tokenString string) (domain.Principal, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Principal{}, autherrors.ErrTokenExpired
		}
		return domain.Principal{}, autherrors.ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 || claims.ID == "" {
		return domain.Principal{}, autherrors.ErrInvalidToken
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("token revocation lookup failed", zap.String("token_id", claims.ID), zap.Error(err))
		return domain.Principal{}, apperror.Internal(err)
	}
	if revoked {
		return domain.Principal{}, autherrors.ErrTokenRevoked
	}

	return domain.Principal{
		ID:        id,
		Email:     claims.Email,
		Roles:     claims.Roles,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *service) Logout(ctx context.Context, principal domain.Principal) error {
	ttl := principal.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.tokens.Revoke(ctx, principal.TokenID, ttl); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("revoke token failed",
			zap.String("token_id", principal.TokenID),
			zap.Error(err),
		)
		return apperror.Internal(err)
	}
	return nil
}

func (s *service) Me(ctx context.Context, principal domain.Principal) (MeResponse, error) {
	account, err := s.repo.FindByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeResponse{}, autherrors.ErrUserNotFound
		}
		return MeResponse{}, apperror.Internal(err)
	}
	if !account.Enabled {
		return MeResponse{}, autherrors.ErrAccountDisabled
	}

	roles := account.RoleNames()
	slices.Sort(roles)
	return MeResponse{
		ID:    account.ID,
		Email: account.Email,
		Roles: roles,
	}, nil
}

func (s *service) EnsureAccount(ctx context.Context, email, password string, roles []string) error {
	email = normalizeEmail(email)

	_, err := s.repo.FindForLoginByEmail(ctx, email)
	if err == nil {
		s.logger.Debug("account already present", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	storedRoles, err := s.repo.FindOrCreateRoles(ctx, roles)
	if err != nil {
		return err
	}

	account := &UserAccount{
		Email:        email,
		PasswordHash: string(hash),
		Enabled:      true,
		Roles:        storedRoles,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return err
	}

	s.logger.Info("account created", zap.Int64("account_id", account.ID), zap.Strings("roles", roles))
	return nil
}
