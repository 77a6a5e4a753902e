package service

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/pgangayi/farmstead-auth/internal/auth/domain UserRepository,RefreshTokenStore,RevocationLedger,LoginAttemptStore,SecurityEventStore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pgangayi/farmstead-auth/config"
	"github.com/pgangayi/farmstead-auth/internal/auth/domain"
	"github.com/pgangayi/farmstead-auth/internal/auth/dto"
	autherror "github.com/pgangayi/farmstead-auth/internal/errors"
	"github.com/pgangayi/farmstead-auth/pkg/constant"
)

// SessionService sequences the whole session lifecycle: signup, login,
// validate, refresh and logout. It composes the stores and the token codec;
// all policy decisions (lockout-first ordering, reuse detection, deny on
// failed security writes) live here.
type SessionService struct {
	users         domain.UserRepository
	refreshTokens domain.RefreshTokenStore
	ledger        domain.RevocationLedger
	limiter       *LoginLimiter
	tokens        TokenGenerator
	csrf          CSRFIssuer
	recorder      *SecurityRecorder
	cfg           *config.Config
}

func NewSessionService(
	users domain.UserRepository,
	refreshTokens domain.RefreshTokenStore,
	ledger domain.RevocationLedger,
	limiter *LoginLimiter,
	tokens TokenGenerator,
	recorder *SecurityRecorder,
	cfg *config.Config,
) *SessionService {
	return &SessionService{
		users:         users,
		refreshTokens: refreshTokens,
		ledger:        ledger,
		limiter:       limiter,
		tokens:        tokens,
		csrf:          NewCSRFIssuer(),
		recorder:      recorder,
		cfg:           cfg,
	}
}

func (s *SessionService) Signup(ctx context.Context, input dto.SignupInput) (*dto.SessionBundle, error) {
	email := normalizeEmail(input.Email)
	if err := s.validateSignup(email, input.Password, input.Name); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         strings.TrimSpace(input.Name),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	bundle, err := s.mintSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, domain.EventUserRegistered, &user.ID, input.IPAddress, input.UserAgent, nil)

	return bundle, nil
}

func (s *SessionService) Login(ctx context.Context, input dto.LoginInput) (*dto.SessionBundle, error) {
	email := normalizeEmail(input.Email)

	// Lockout is checked before any credential work, and independent of
	// whether the email belongs to a registered user.
	locked, err := s.limiter.IsLocked(ctx, email, input.IPAddress)
	if err != nil {
		return nil, err
	}
	if locked {
		s.recorder.Record(ctx, domain.EventLoginLockedOut, nil, input.IPAddress, input.UserAgent,
			map[string]any{"email": email})
		return nil, autherror.ErrTooManyLoginAttempts
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		// Recording the failure must succeed before the response goes out;
		// otherwise an attacker could ride a broken limiter forever.
		if err := s.limiter.RecordFailure(ctx, email, input.IPAddress); err != nil {
			return nil, fmt.Errorf("failed to record login failure: %w", err)
		}
		s.recorder.Record(ctx, domain.EventLoginFailed, nil, input.IPAddress, input.UserAgent,
			map[string]any{"email": email})
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.limiter.RecordSuccess(ctx, email, input.IPAddress); err != nil {
		return nil, fmt.Errorf("failed to reset login attempts: %w", err)
	}

	bundle, err := s.mintSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, domain.EventLoginSuccess, &user.ID, input.IPAddress, input.UserAgent, nil)

	return bundle, nil
}

// Validate checks signature and expiry via the token codec, then the
// revocation ledger. The caller cannot distinguish which check failed.
func (s *SessionService) Validate(ctx context.Context, accessToken string) (*dto.UserOutput, error) {
	claims, err := s.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, autherror.ErrUnauthorized
	}

	revoked, err := s.ledger.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check revocation ledger: %w", err)
	}
	if revoked {
		return nil, autherror.ErrUnauthorized
	}

	return &dto.UserOutput{ID: claims.Subject, Email: claims.Email}, nil
}

func (s *SessionService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.SessionBundle, error) {
	if input.RefreshToken == "" {
		return nil, autherror.ErrUnauthorized
	}

	row, err := s.refreshTokens.GetByHash(ctx, hashTokenValue(input.RefreshToken))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}

	if !s.csrf.Validate(input.CsrfToken, row.CsrfToken) {
		return nil, autherror.ErrCSRFMismatch
	}

	if row.Revoked {
		// A rotated token coming back is the theft signal: take down the
		// whole chain and force a fresh login.
		return nil, s.handleReuse(ctx, row, input.IPAddress, input.UserAgent)
	}

	if !time.Now().Before(row.ExpiresAt) {
		return nil, autherror.ErrRefreshTokenExpired
	}

	newJti := uuid.NewString()
	if err := s.refreshTokens.MarkRotated(ctx, row.ID, newJti); err != nil {
		if errors.Is(err, autherror.ErrRefreshTokenRevoked) {
			// Lost the race against a concurrent replay of the same value.
			return nil, s.handleReuse(ctx, row, input.IPAddress, input.UserAgent)
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, row.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUnauthorized
	}

	bundle, err := s.mintRotated(ctx, user, row.ChainID, newJti)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, domain.EventTokenRefreshed, &user.ID, input.IPAddress, input.UserAgent,
		map[string]any{"chain_id": row.ChainID})

	return bundle, nil
}

func (s *SessionService) Logout(ctx context.Context, input dto.LogoutInput) error {
	claims, err := s.tokens.VerifyAccessToken(input.AccessToken)
	if err != nil {
		return autherror.ErrUnauthorized
	}

	revoked, err := s.ledger.IsRevoked(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("failed to check revocation ledger: %w", err)
	}
	if revoked {
		return autherror.ErrUnauthorized
	}

	if input.RefreshToken == "" {
		return autherror.ErrCSRFMismatch
	}

	row, err := s.refreshTokens.GetByHash(ctx, hashTokenValue(input.RefreshToken))
	if err != nil {
		return err
	}
	if row == nil || row.UserID != claims.Subject || !s.csrf.Validate(input.CsrfToken, row.CsrfToken) {
		return autherror.ErrCSRFMismatch
	}

	entry := &domain.RevokedToken{
		JTI:       claims.ID,
		TokenType: constant.TokenTypeAccess,
		UserID:    claims.Subject,
		RevokedAt: time.Now(),
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := s.ledger.Revoke(ctx, entry); err != nil {
		return fmt.Errorf("failed to revoke access token: %w", err)
	}

	if err := s.refreshTokens.Revoke(ctx, row.ID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	s.recorder.Record(ctx, domain.EventLogout, &claims.Subject, input.IPAddress, input.UserAgent, nil)

	// Opportunistic ledger GC; entries past their natural expiry carry no
	// information.
	if _, err := s.ledger.PurgeExpired(ctx); err != nil {
		log.Printf("warn: failed to purge revocation ledger: %v", err)
	}

	return nil
}

// handleReuse revokes the whole rotation chain and reports the event. The
// caller only ever sees an ordinary unauthorized error.
func (s *SessionService) handleReuse(ctx context.Context, row *domain.RefreshToken, ip, userAgent string) error {
	if err := s.refreshTokens.RevokeChain(ctx, row.ChainID); err != nil {
		return fmt.Errorf("failed to revoke token chain: %w", err)
	}

	s.recorder.Record(ctx, domain.EventTokenReuseDetected, &row.UserID, ip, userAgent,
		map[string]any{"chain_id": row.ChainID, "jti": row.ID})

	return autherror.ErrRefreshTokenRevoked
}

// mintSession starts a new rotation chain for a fresh login or signup.
func (s *SessionService) mintSession(ctx context.Context, user *domain.User) (*dto.SessionBundle, error) {
	bundle, err := s.mintRotated(ctx, user, uuid.NewString(), uuid.NewString())
	if err != nil {
		return nil, err
	}

	bundle.User = &dto.UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	return bundle, nil
}

// mintRotated mints an access token plus a refresh token row with the given
// jti on an existing chain, along with the CSRF token bound to it.
func (s *SessionService) mintRotated(ctx context.Context, user *domain.User, chainID, jti string) (*dto.SessionBundle, error) {
	accessToken, _, _, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	refreshValue, err := newOpaqueToken()
	if err != nil {
		return nil, err
	}

	csrfToken, err := s.csrf.Issue()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	row := &domain.RefreshToken{
		ID:        jti,
		UserID:    user.ID,
		TokenHash: hashTokenValue(refreshValue),
		ChainID:   chainID,
		CsrfToken: csrfToken,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.tokens.GetRefreshTokenExpiry()),
	}
	if err := s.refreshTokens.Store(ctx, row); err != nil {
		return nil, err
	}

	return &dto.SessionBundle{
		AccessToken:  accessToken,
		RefreshToken: refreshValue,
		CsrfToken:    csrfToken,
		ExpiresIn:    int(s.tokens.GetAccessTokenExpiry().Seconds()),
	}, nil
}

// RefreshTokenTTL is exposed for the handler's Set-Cookie Max-Age.
func (s *SessionService) RefreshTokenTTL() time.Duration {
	return s.tokens.GetRefreshTokenExpiry()
}

func (s *SessionService) validateSignup(email, password, name string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	minChars := s.cfg.Lockout.MinPasswordChars
	if minChars <= 0 {
		minChars = constant.MinPasswordLength
	}
	if len(password) < minChars {
		return fmt.Errorf("%w: password must be at least %d characters", autherror.ErrValidation, minChars)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", autherror.ErrValidation)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", autherror.ErrValidation)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address", autherror.ErrValidation)
	}
	return nil
}

func hashTokenValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
