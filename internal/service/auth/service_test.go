package auth

import (
	"context"
	"os"
	"testing"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/auth"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/jwt"
	"github.com/clockwork-hr/worktime-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

const authTestSchema = `
	CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'EMPLOYEE',
		manager_id UUID REFERENCES employees(id),
		vacation_balance NUMERIC(5,2) NOT NULL DEFAULT 0,
		sick_balance NUMERIC(5,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id),
		token_hash TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		user_agent TEXT NOT NULL DEFAULT '',
		ip_address TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

func authTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database-backed test")
	}
	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.Pool.Exec(ctx, authTestSchema)
	require.NoError(t, err)
	_, err = db.Pool.Exec(ctx, "TRUNCATE TABLE refresh_tokens, employees CASCADE")
	require.NoError(t, err)
	return db
}

func newTestAuthService(db *database.DB) auth.AuthService {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(db, postgresql.NewEmployeeRepository(db), jwtService, postgresql.NewRefreshTokenRepository(db))
}

func seedAuthEmployee(t *testing.T, db *database.DB, email, password string) string {
	t.Helper()
	id := uuid.NewString()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = db.Pool.Exec(context.Background(), `
		INSERT INTO employees (id, email, password_hash, role)
		VALUES ($1, $2, $3, 'EMPLOYEE')
	`, id, email, string(hashed))
	require.NoError(t, err)
	return id
}

var testSession = auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"}

func TestAuthService_Login_Success(t *testing.T) {
	db := authTestDB(t)
	ctx := context.Background()

	seedAuthEmployee(t, db, "login@example.com", "password123")
	service := newTestAuthService(db)

	resp, err := service.Login(ctx, auth.LoginRequest{Email: "login@example.com", Password: "password123"}, testSession)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, resp.RefreshTokenExpiresIn, int64(0))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	db := authTestDB(t)
	ctx := context.Background()

	seedAuthEmployee(t, db, "login@example.com", "password123")
	service := newTestAuthService(db)

	_, err := service.Login(ctx, auth.LoginRequest{Email: "login@example.com", Password: "wrong"}, testSession)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	db := authTestDB(t)
	ctx := context.Background()

	service := newTestAuthService(db)

	// An unknown email reports the same error as a wrong password.
	_, err := service.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"}, testSession)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	db := authTestDB(t)
	ctx := context.Background()

	seedAuthEmployee(t, db, "login@example.com", "password123")
	service := newTestAuthService(db)

	loginResp, err := service.Login(ctx, auth.LoginRequest{Email: "login@example.com", Password: "password123"}, testSession)
	require.NoError(t, err)

	refreshResp, err := service.Refresh(ctx, loginResp.RefreshToken, testSession)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshResp.AccessToken)
	assert.NotEmpty(t, refreshResp.RefreshToken)

	// The rotated-out token is revoked and cannot be replayed.
	_, err = service.Refresh(ctx, loginResp.RefreshToken, testSession)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	db := authTestDB(t)
	ctx := context.Background()

	service := newTestAuthService(db)

	_, err := service.Refresh(ctx, "not-a-jwt", testSession)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	db := authTestDB(t)
	ctx := context.Background()

	seedAuthEmployee(t, db, "login@example.com", "password123")
	service := newTestAuthService(db)

	loginResp, err := service.Login(ctx, auth.LoginRequest{Email: "login@example.com", Password: "password123"}, testSession)
	require.NoError(t, err)

	// An access token is a valid JWT but the wrong type for refresh.
	_, err = service.Refresh(ctx, loginResp.AccessToken, testSession)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	db := authTestDB(t)
	ctx := context.Background()

	seedAuthEmployee(t, db, "login@example.com", "password123")
	service := newTestAuthService(db)

	loginResp, err := service.Login(ctx, auth.LoginRequest{Email: "login@example.com", Password: "password123"}, testSession)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, loginResp.RefreshToken))

	_, err = service.Refresh(ctx, loginResp.RefreshToken, testSession)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
