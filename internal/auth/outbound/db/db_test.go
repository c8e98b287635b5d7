package db

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("authstarter"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(nat.Port("5432/tcp")),
		)),
	)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("postgres connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../../../migrations/0001_init.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		t.Fatalf("apply migration: %v", err)
	}

	return NewDB(pool, instrument.NewNoop())
}

func seedUser(t *testing.T, s *DB, id int64, email, phone string) {
	t.Helper()

	err := s.CreateUser(context.Background(), entity.User{
		ID:        id,
		Email:     email,
		Phone:     phone,
		FirstName: "Ada",
		LastName:  "Obi",
		Password:  "hashed",
		Role:      entity.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user %d: %v", id, err)
	}
}

func TestCreateAndGetUser(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	seedUser(t, s, 1, "ada@example.com", "+2348012345678")

	byID, err := s.GetUserByID(ctx, 1)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != "ada@example.com" || byID.Phone != "+2348012345678" {
		t.Fatalf("user = %+v", byID)
	}
	if byID.Role != entity.RoleUser {
		t.Fatalf("role = %q", byID.Role)
	}
	if byID.PhoneVerified || byID.EmailVerified {
		t.Fatal("fresh user must be unverified")
	}

	byEmail, err := s.GetUserByEmail(ctx, "ada@example.com")
	if err != nil || byEmail.ID != 1 {
		t.Fatalf("get by email: %v, %+v", err, byEmail)
	}

	byPhone, err := s.GetUserByPhone(ctx, "+2348012345678")
	if err != nil || byPhone.ID != 1 {
		t.Fatalf("get by phone: %v, %+v", err, byPhone)
	}

	if _, err := s.GetUserByID(ctx, 404); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("missing user err = %v, want ErrNotFound", err)
	}
}

func TestCreateUserUniqueConstraints(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	seedUser(t, s, 1, "ada@example.com", "+2348012345678")

	err := s.CreateUser(ctx, entity.User{
		ID: 2, Email: "ada@example.com", Phone: "+2348099998888",
		FirstName: "B", LastName: "C", Password: "x", Role: entity.RoleUser,
	})
	if !errors.Is(err, entity.ErrEmailTaken) {
		t.Fatalf("dup email err = %v, want ErrEmailTaken", err)
	}

	err = s.CreateUser(ctx, entity.User{
		ID: 3, Email: "other@example.com", Phone: "+2348012345678",
		FirstName: "B", LastName: "C", Password: "x", Role: entity.RoleUser,
	})
	if !errors.Is(err, entity.ErrPhoneTaken) {
		t.Fatalf("dup phone err = %v, want ErrPhoneTaken", err)
	}
}

func TestOTPIssueRoundTrip(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	seedUser(t, s, 1, "ada@example.com", "+2348012345678")

	issuedAt := time.Now().UTC().Truncate(time.Microsecond)
	issue := entity.OTPIssue{
		UserID:        1,
		Purpose:       entity.OTPPurposePhoneVerify,
		Code:          "4321",
		ExpiresAt:     issuedAt.Add(10 * time.Minute),
		RequestCount:  1,
		LastRequestAt: issuedAt,
	}
	if err := s.SaveOTPIssue(ctx, issue); err != nil {
		t.Fatalf("save otp issue: %v", err)
	}

	u, err := s.GetUserByID(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.PhoneOTP.Code != "4321" {
		t.Fatalf("stored code = %q", u.PhoneOTP.Code)
	}
	if u.PhoneOTP.ExpiresAt == nil || !u.PhoneOTP.ExpiresAt.Equal(issue.ExpiresAt) {
		t.Fatalf("stored expiry = %v, want %v", u.PhoneOTP.ExpiresAt, issue.ExpiresAt)
	}
	if u.OTPRequestCount != 1 || u.LastOTPRequestAt == nil {
		t.Fatalf("throttle state = %d, %v", u.OTPRequestCount, u.LastOTPRequestAt)
	}
	if u.EmailOTP.Pending() || u.ResetOTP.Pending() {
		t.Fatal("other purposes must not be touched")
	}

	if err := s.MarkChannelVerified(ctx, 1, entity.OTPPurposePhoneVerify); err != nil {
		t.Fatalf("mark verified: %v", err)
	}
	u, err = s.GetUserByID(ctx, 1)
	if err != nil {
		t.Fatalf("get after verify: %v", err)
	}
	if !u.PhoneVerified {
		t.Fatal("phone must be verified")
	}
	if u.PhoneOTP.Pending() || u.PhoneOTP.ExpiresAt != nil {
		t.Fatal("code and expiry must be cleared")
	}
}

func TestMarkChannelVerifiedRejectsResetPurpose(t *testing.T) {
	s := newTestDB(t)

	seedUser(t, s, 1, "ada@example.com", "+2348012345678")

	err := s.MarkChannelVerified(context.Background(), 1, entity.OTPPurposePasswordReset)
	if !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestResetPasswordClearsResetCode(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	seedUser(t, s, 1, "ada@example.com", "+2348012345678")

	now := time.Now().UTC()
	if err := s.SaveOTPIssue(ctx, entity.OTPIssue{
		UserID: 1, Purpose: entity.OTPPurposePasswordReset, Code: "7777",
		ExpiresAt: now.Add(10 * time.Minute), RequestCount: 1, LastRequestAt: now,
	}); err != nil {
		t.Fatalf("save reset otp: %v", err)
	}

	if err := s.ResetUserPassword(ctx, 1, "new-hash"); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	u, err := s.GetUserByID(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Password != "new-hash" {
		t.Fatalf("password = %q", u.Password)
	}
	if u.ResetOTP.Pending() {
		t.Fatal("reset code must be cleared")
	}
}

func TestResetTokenFlow(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	seedUser(t, s, 1, "ada@example.com", "+2348012345678")

	expiresAt := time.Now().UTC().Add(10 * time.Minute)
	if err := s.SaveResetToken(ctx, 1, "tok-abc", expiresAt); err != nil {
		t.Fatalf("save reset token: %v", err)
	}

	u, err := s.GetUserByResetToken(ctx, "tok-abc")
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if u.ID != 1 || u.ResetTokenExpiresAt == nil {
		t.Fatalf("user = %+v", u)
	}

	if err := s.ResetUserPasswordByToken(ctx, 1, "new-hash"); err != nil {
		t.Fatalf("reset by token: %v", err)
	}

	if _, err := s.GetUserByResetToken(ctx, "tok-abc"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("consumed token lookup err = %v, want ErrNotFound", err)
	}
}

func TestMarkUserDeletedHidesUser(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	seedUser(t, s, 1, "ada@example.com", "+2348012345678")

	if err := s.MarkUserDeleted(ctx, 1); err != nil {
		t.Fatalf("mark deleted: %v", err)
	}

	if _, err := s.GetUserByID(ctx, 1); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("deleted user lookup err = %v, want ErrNotFound", err)
	}
	if _, err := s.GetUserByEmail(ctx, "ada@example.com"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("deleted user email lookup err = %v, want ErrNotFound", err)
	}

	if err := s.SaveOTPIssue(ctx, entity.OTPIssue{
		UserID: 1, Purpose: entity.OTPPurposePhoneVerify, Code: "1111",
		ExpiresAt: time.Now().Add(time.Minute), RequestCount: 1, LastRequestAt: time.Now(),
	}); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("issuing to a deleted user err = %v, want ErrNotFound", err)
	}
}

func TestGetUserList(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	seedUser(t, s, 1, "ada@example.com", "+2348012345671")
	seedUser(t, s, 2, "ben@example.com", "+2348012345672")
	seedUser(t, s, 3, "chi@example.com", "+2348012345673")

	users, total, err := s.GetUserList(ctx, entity.UserListFilter{Page: 1, Size: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if len(users) != 2 {
		t.Fatalf("page size = %d, want 2", len(users))
	}

	users, total, err = s.GetUserList(ctx, entity.UserListFilter{Search: "ben", Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("search list: %v", err)
	}
	if total != 1 || len(users) != 1 || users[0].Email != "ben@example.com" {
		t.Fatalf("search result = %d/%v", total, users)
	}
}
