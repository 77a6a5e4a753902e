package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pgangayi/farmstead-auth/config"
	"github.com/pgangayi/farmstead-auth/internal/auth/domain"
	"github.com/pgangayi/farmstead-auth/internal/auth/dto"
	"github.com/pgangayi/farmstead-auth/internal/auth/service"
	autherror "github.com/pgangayi/farmstead-auth/internal/errors"
	"github.com/pgangayi/farmstead-auth/internal/mocks"
	"github.com/pgangayi/farmstead-auth/pkg/constant"
)

type sessionFixture struct {
	users    *mocks.MockUserRepository
	refresh  *mocks.MockRefreshTokenStore
	ledger   *mocks.MockRevocationLedger
	attempts *mocks.MockLoginAttemptStore
	events   *mocks.MockSecurityEventStore
	tokens   *mocks.MockTokenGenerator
	svc      *service.SessionService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &sessionFixture{
		users:    mocks.NewMockUserRepository(ctrl),
		refresh:  mocks.NewMockRefreshTokenStore(ctrl),
		ledger:   mocks.NewMockRevocationLedger(ctrl),
		attempts: mocks.NewMockLoginAttemptStore(ctrl),
		events:   mocks.NewMockSecurityEventStore(ctrl),
		tokens:   mocks.NewMockTokenGenerator(ctrl),
	}

	// Audit inserts are incidental to most assertions.
	f.events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{
		Lockout: config.LockoutPolicy{
			MaxFailures:      5,
			WindowMinutes:    15,
			LockoutMinutes:   15,
			MinPasswordChars: 8,
		},
	}
	limiter := service.NewLoginLimiter(f.attempts, cfg.Lockout)
	recorder := service.NewSecurityRecorder(f.events, nil)
	f.svc = service.NewSessionService(f.users, f.refresh, f.ledger, limiter, f.tokens, recorder, cfg)

	return f
}

func (f *sessionFixture) expectMint() {
	f.tokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("signed-access", "access-jti", time.Now().Add(time.Hour), nil)
	f.tokens.EXPECT().GetRefreshTokenExpiry().Return(30 * 24 * time.Hour)
	f.tokens.EXPECT().GetAccessTokenExpiry().Return(time.Hour)
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

func TestSessionService_Signup_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.users.EXPECT().GetByEmail(ctx, "a@x.com").Return(nil, nil)

	var createdUser *domain.User
	f.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) error {
			createdUser = user
			return nil
		})

	f.expectMint()

	var storedRow *domain.RefreshToken
	f.refresh.EXPECT().Store(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rt *domain.RefreshToken) error {
			storedRow = rt
			return nil
		})

	bundle, err := f.svc.Signup(ctx, dto.SignupInput{
		Email:    "A@X.com ",
		Password: "Str0ngPass!",
		Name:     "A",
	})
	require.NoError(t, err)
	require.NotNil(t, bundle)
	require.NotNil(t, createdUser)

	assert.Equal(t, "a@x.com", createdUser.Email)
	assert.NotEqual(t, "Str0ngPass!", createdUser.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.PasswordHash), []byte("Str0ngPass!")))

	assert.NotEmpty(t, bundle.AccessToken)
	assert.NotEmpty(t, bundle.RefreshToken)
	assert.NotEmpty(t, bundle.CsrfToken)
	assert.Equal(t, 3600, bundle.ExpiresIn)
	require.NotNil(t, bundle.User)
	assert.Equal(t, createdUser.ID, bundle.User.ID)

	require.NotNil(t, storedRow)
	assert.Equal(t, createdUser.ID, storedRow.UserID)
	assert.Equal(t, hashValue(bundle.RefreshToken), storedRow.TokenHash)
	assert.Equal(t, bundle.CsrfToken, storedRow.CsrfToken)
	assert.False(t, storedRow.Revoked)
	assert.NotEmpty(t, storedRow.ChainID)
}

func TestSessionService_Signup_Duplicate(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.users.EXPECT().GetByEmail(ctx, "a@x.com").Return(&domain.User{ID: "user-1", Email: "a@x.com"}, nil)

	_, err := f.svc.Signup(ctx, dto.SignupInput{Email: "a@x.com", Password: "Str0ngPass!", Name: "A"})
	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
}

func TestSessionService_Signup_Validation(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input dto.SignupInput
	}{
		{"empty email", dto.SignupInput{Email: "", Password: "Str0ngPass!", Name: "A"}},
		{"malformed email", dto.SignupInput{Email: "not-an-email", Password: "Str0ngPass!", Name: "A"}},
		{"short password", dto.SignupInput{Email: "a@x.com", Password: "short", Name: "A"}},
		{"empty name", dto.SignupInput{Email: "a@x.com", Password: "Str0ngPass!", Name: "  "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Signup(ctx, tc.input)
			assert.ErrorIs(t, err, autherror.ErrValidation)
		})
	}
}

func TestSessionService_Login_LockedOut(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	lockedUntil := time.Now().Add(10 * time.Minute)
	f.attempts.EXPECT().Get(ctx, "a@x.com", "1.2.3.4").Return(&domain.LoginAttempt{
		LockedUntil: &lockedUntil,
	}, nil)

	// No GetByEmail expectation: locked-out requests must never reach the
	// user table, correct password or not.
	_, err := f.svc.Login(ctx, dto.LoginInput{Email: "a@x.com", Password: "Str0ngPass!", IPAddress: "1.2.3.4"})
	assert.ErrorIs(t, err, autherror.ErrTooManyLoginAttempts)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ngPass!"), bcrypt.MinCost)
	require.NoError(t, err)

	f.attempts.EXPECT().Get(ctx, "a@x.com", "1.2.3.4").Return(nil, nil).Times(2)
	f.users.EXPECT().GetByEmail(ctx, "a@x.com").Return(&domain.User{
		ID:           "user-1",
		Email:        "a@x.com",
		PasswordHash: string(hash),
	}, nil)

	var saved *domain.LoginAttempt
	f.attempts.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, attempt *domain.LoginAttempt) error {
			saved = attempt
			return nil
		})

	_, err = f.svc.Login(ctx, dto.LoginInput{Email: "a@x.com", Password: "wrong", IPAddress: "1.2.3.4"})
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	require.NotNil(t, saved)
	assert.Equal(t, 1, saved.AttemptCount)
}

func TestSessionService_Login_UnknownEmailSameError(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.attempts.EXPECT().Get(ctx, "ghost@x.com", "1.2.3.4").Return(nil, nil).Times(2)
	f.users.EXPECT().GetByEmail(ctx, "ghost@x.com").Return(nil, nil)
	f.attempts.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	_, err := f.svc.Login(ctx, dto.LoginInput{Email: "ghost@x.com", Password: "whatever1", IPAddress: "1.2.3.4"})
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestSessionService_Login_FailureRecordMustSucceed(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.attempts.EXPECT().Get(ctx, "a@x.com", "1.2.3.4").Return(nil, nil).Times(2)
	f.users.EXPECT().GetByEmail(ctx, "a@x.com").Return(nil, nil)
	f.attempts.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("db down"))

	_, err := f.svc.Login(ctx, dto.LoginInput{Email: "a@x.com", Password: "whatever1", IPAddress: "1.2.3.4"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestSessionService_Login_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ngPass!"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: "user-1", Email: "a@x.com", PasswordHash: string(hash), Name: "A"}

	f.attempts.EXPECT().Get(ctx, "a@x.com", "1.2.3.4").Return(nil, nil)
	f.users.EXPECT().GetByEmail(ctx, "a@x.com").Return(user, nil)
	f.attempts.EXPECT().Reset(ctx, "a@x.com", "1.2.3.4").Return(nil)

	f.tokens.EXPECT().Generate("user-1", "a@x.com").Return("signed-access", "access-jti", time.Now().Add(time.Hour), nil)
	f.tokens.EXPECT().GetRefreshTokenExpiry().Return(30 * 24 * time.Hour)
	f.tokens.EXPECT().GetAccessTokenExpiry().Return(time.Hour)
	f.refresh.EXPECT().Store(ctx, gomock.Any()).Return(nil)

	bundle, err := f.svc.Login(ctx, dto.LoginInput{Email: "a@x.com", Password: "Str0ngPass!", IPAddress: "1.2.3.4"})
	require.NoError(t, err)
	assert.Equal(t, "signed-access", bundle.AccessToken)
	assert.NotEmpty(t, bundle.RefreshToken)
	assert.NotEmpty(t, bundle.CsrfToken)
	require.NotNil(t, bundle.User)
	assert.Equal(t, "user-1", bundle.User.ID)
}

func TestSessionService_Validate(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	claims := &service.AccessClaims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-1",
			ID:      "jti-1",
		},
	}

	t.Run("valid", func(t *testing.T) {
		f.tokens.EXPECT().VerifyAccessToken("good-token").Return(claims, nil)
		f.ledger.EXPECT().IsRevoked(ctx, "jti-1").Return(false, nil)

		user, err := f.svc.Validate(ctx, "good-token")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "a@x.com", user.Email)
	})

	t.Run("bad signature", func(t *testing.T) {
		f.tokens.EXPECT().VerifyAccessToken("bad-token").Return(nil, errors.New("signature is invalid"))

		_, err := f.svc.Validate(ctx, "bad-token")
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
	})

	t.Run("revoked jti rejected despite valid signature", func(t *testing.T) {
		f.tokens.EXPECT().VerifyAccessToken("good-token").Return(claims, nil)
		f.ledger.EXPECT().IsRevoked(ctx, "jti-1").Return(true, nil)

		_, err := f.svc.Validate(ctx, "good-token")
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
	})

	t.Run("ledger failure denies", func(t *testing.T) {
		f.tokens.EXPECT().VerifyAccessToken("good-token").Return(claims, nil)
		f.ledger.EXPECT().IsRevoked(ctx, "jti-1").Return(false, errors.New("db down"))

		_, err := f.svc.Validate(ctx, "good-token")
		require.Error(t, err)
	})
}

func activeRefreshRow(value string) *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        "old-jti",
		UserID:    "user-1",
		TokenHash: hashValue(value),
		ChainID:   "chain-1",
		CsrfToken: "csrf-1",
		IssuedAt:  time.Now().Add(-time.Hour),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func TestSessionService_Refresh_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	row := activeRefreshRow("old-value")
	f.refresh.EXPECT().GetByHash(ctx, hashValue("old-value")).Return(row, nil)

	var rotatedTo string
	f.refresh.EXPECT().MarkRotated(ctx, "old-jti", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, replacedBy string) error {
			rotatedTo = replacedBy
			return nil
		})

	f.users.EXPECT().GetByID(ctx, "user-1").Return(&domain.User{ID: "user-1", Email: "a@x.com"}, nil)
	f.tokens.EXPECT().Generate("user-1", "a@x.com").Return("new-access", "new-access-jti", time.Now().Add(time.Hour), nil)
	f.tokens.EXPECT().GetRefreshTokenExpiry().Return(30 * 24 * time.Hour)
	f.tokens.EXPECT().GetAccessTokenExpiry().Return(time.Hour)

	var storedRow *domain.RefreshToken
	f.refresh.EXPECT().Store(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rt *domain.RefreshToken) error {
			storedRow = rt
			return nil
		})

	bundle, err := f.svc.Refresh(ctx, dto.RefreshInput{RefreshToken: "old-value", CsrfToken: "csrf-1"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", bundle.AccessToken)
	assert.NotEqual(t, "old-value", bundle.RefreshToken)
	assert.NotEqual(t, "csrf-1", bundle.CsrfToken)
	assert.Nil(t, bundle.User)

	require.NotNil(t, storedRow)
	assert.Equal(t, rotatedTo, storedRow.ID)
	assert.Equal(t, "chain-1", storedRow.ChainID)
	assert.Equal(t, hashValue(bundle.RefreshToken), storedRow.TokenHash)
}

func TestSessionService_Refresh_CSRFMismatch(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	row := activeRefreshRow("old-value")
	f.refresh.EXPECT().GetByHash(ctx, hashValue("old-value")).Return(row, nil)

	_, err := f.svc.Refresh(ctx, dto.RefreshInput{RefreshToken: "old-value", CsrfToken: "wrong"})
	assert.ErrorIs(t, err, autherror.ErrCSRFMismatch)
}

func TestSessionService_Refresh_ReuseRevokesChain(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	row := activeRefreshRow("stolen-value")
	row.Revoked = true
	f.refresh.EXPECT().GetByHash(ctx, hashValue("stolen-value")).Return(row, nil)
	f.refresh.EXPECT().RevokeChain(ctx, "chain-1").Return(nil)

	_, err := f.svc.Refresh(ctx, dto.RefreshInput{RefreshToken: "stolen-value", CsrfToken: "csrf-1"})
	assert.ErrorIs(t, err, autherror.ErrRefreshTokenRevoked)
}

func TestSessionService_Refresh_RaceLoserRevokesChain(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	row := activeRefreshRow("racing-value")
	f.refresh.EXPECT().GetByHash(ctx, hashValue("racing-value")).Return(row, nil)
	f.refresh.EXPECT().MarkRotated(ctx, "old-jti", gomock.Any()).Return(autherror.ErrRefreshTokenRevoked)
	f.refresh.EXPECT().RevokeChain(ctx, "chain-1").Return(nil)

	_, err := f.svc.Refresh(ctx, dto.RefreshInput{RefreshToken: "racing-value", CsrfToken: "csrf-1"})
	assert.ErrorIs(t, err, autherror.ErrRefreshTokenRevoked)
}

func TestSessionService_Refresh_Expired(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	row := activeRefreshRow("old-value")
	row.ExpiresAt = time.Now().Add(-time.Minute)
	f.refresh.EXPECT().GetByHash(ctx, hashValue("old-value")).Return(row, nil)

	_, err := f.svc.Refresh(ctx, dto.RefreshInput{RefreshToken: "old-value", CsrfToken: "csrf-1"})
	assert.ErrorIs(t, err, autherror.ErrRefreshTokenExpired)
}

func TestSessionService_Refresh_Unknown(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.refresh.EXPECT().GetByHash(ctx, gomock.Any()).Return(nil, nil)

	_, err := f.svc.Refresh(ctx, dto.RefreshInput{RefreshToken: "nope", CsrfToken: "csrf-1"})
	assert.ErrorIs(t, err, autherror.ErrRefreshTokenNotFound)
}

func TestSessionService_Logout_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	exp := time.Now().Add(30 * time.Minute)
	claims := &service.AccessClaims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ID:        "access-jti",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	row := activeRefreshRow("refresh-value")
	f.tokens.EXPECT().VerifyAccessToken("access-token").Return(claims, nil)
	f.ledger.EXPECT().IsRevoked(ctx, "access-jti").Return(false, nil)
	f.refresh.EXPECT().GetByHash(ctx, hashValue("refresh-value")).Return(row, nil)

	var entry *domain.RevokedToken
	f.ledger.EXPECT().Revoke(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.RevokedToken) error {
			entry = e
			return nil
		})
	f.refresh.EXPECT().Revoke(ctx, "old-jti").Return(nil)
	f.ledger.EXPECT().PurgeExpired(ctx).Return(int64(0), nil)

	err := f.svc.Logout(ctx, dto.LogoutInput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-value",
		CsrfToken:    "csrf-1",
	})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "access-jti", entry.JTI)
	assert.Equal(t, constant.TokenTypeAccess, entry.TokenType)
	assert.WithinDuration(t, exp, entry.ExpiresAt, time.Second)
}

func TestSessionService_Logout_SecondCallUnauthorized(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	claims := &service.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ID:        "access-jti",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}

	f.tokens.EXPECT().VerifyAccessToken("access-token").Return(claims, nil)
	f.ledger.EXPECT().IsRevoked(ctx, "access-jti").Return(true, nil)

	err := f.svc.Logout(ctx, dto.LogoutInput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-value",
		CsrfToken:    "csrf-1",
	})
	assert.ErrorIs(t, err, autherror.ErrUnauthorized)
}

func TestSessionService_Logout_CSRFMismatch(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	claims := &service.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ID:        "access-jti",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}

	row := activeRefreshRow("refresh-value")
	f.tokens.EXPECT().VerifyAccessToken("access-token").Return(claims, nil)
	f.ledger.EXPECT().IsRevoked(ctx, "access-jti").Return(false, nil)
	f.refresh.EXPECT().GetByHash(ctx, hashValue("refresh-value")).Return(row, nil)

	err := f.svc.Logout(ctx, dto.LogoutInput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-value",
		CsrfToken:    "wrong",
	})
	assert.ErrorIs(t, err, autherror.ErrCSRFMismatch)
}
