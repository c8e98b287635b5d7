package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

func TestSignupSuccess(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Signup(context.Background(), SignupInput{
		Email:     "New@Example.com",
		Phone:     "08012345678",
		FirstName: " Ngozi ",
		LastName:  "Eze",
		Password:  "S3curePass!",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	u, ok := f.repo.users[out.UserID]
	if !ok {
		t.Fatal("user was not persisted")
	}
	if u.Email != "new@example.com" {
		t.Fatalf("email = %q, want lowercased", u.Email)
	}
	if u.Phone != "+2348012345678" {
		t.Fatalf("phone = %q, want canonical international form", u.Phone)
	}
	if u.FirstName != "Ngozi" {
		t.Fatalf("first name = %q, want trimmed", u.FirstName)
	}
	if u.Password == "S3curePass!" {
		t.Fatal("password must be stored hashed")
	}

	if out.Warning != "" {
		t.Fatalf("unexpected warning: %q", out.Warning)
	}
	if len(f.email.sent) != 1 {
		t.Fatalf("expected 1 verification email, got %d", len(f.email.sent))
	}
	if !u.EmailOTP.Pending() {
		t.Fatal("verification code must be persisted at signup")
	}
}

func TestSignupPublishesUserRegistered(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Signup(context.Background(), SignupInput{
		Email:     "new@example.com",
		Phone:     "08012345678",
		FirstName: "Ngozi",
		LastName:  "Eze",
		Password:  "S3curePass!",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if err := f.uc.goroutine.Wait(); err != nil {
		t.Fatalf("wait background publish: %v", err)
	}
	if len(f.msg.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(f.msg.published))
	}
	if f.msg.published[0].UserID != out.UserID {
		t.Fatalf("published user id = %d, want %d", f.msg.published[0].UserID, out.UserID)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	f := newFixture(t, testUser(1))

	_, err := f.uc.Signup(context.Background(), SignupInput{
		Email:     "ada@example.com",
		Phone:     "08099998888",
		FirstName: "Ada",
		LastName:  "Obi",
		Password:  "S3curePass!",
	})
	ge := asGoError(t, err)
	if ge.Code() != goerror.CodeConflict {
		t.Fatalf("code = %v, want CodeConflict", ge.Code())
	}
	if ge.Msg() != "User with this email already exists" {
		t.Fatalf("message = %q", ge.Msg())
	}
}

func TestSignupDuplicatePhone(t *testing.T) {
	f := newFixture(t, testUser(1))

	_, err := f.uc.Signup(context.Background(), SignupInput{
		Email:     "other@example.com",
		Phone:     "08012345678",
		FirstName: "Ada",
		LastName:  "Obi",
		Password:  "S3curePass!",
	})
	ge := asGoError(t, err)
	if ge.Msg() != "User with this phone number already exists" {
		t.Fatalf("message = %q", ge.Msg())
	}
}

func TestSignupVerificationDeliveryFailureStillCreatesUser(t *testing.T) {
	f := newFixture(t)
	f.email.err = errors.New("smtp down")

	out, err := f.uc.Signup(context.Background(), SignupInput{
		Email:     "new@example.com",
		Phone:     "08012345678",
		FirstName: "Ngozi",
		LastName:  "Eze",
		Password:  "S3curePass!",
	})
	if err != nil {
		t.Fatalf("signup must not fail on delivery: %v", err)
	}

	if out.Warning == "" {
		t.Fatal("response should warn about the failed verification mail")
	}
	u := f.repo.users[out.UserID]
	if u == nil {
		t.Fatal("user was not persisted")
	}
	if !u.EmailOTP.Pending() {
		t.Fatal("code must be persisted despite the failed delivery")
	}
}

func TestSignupInvalidPhone(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Signup(context.Background(), SignupInput{
		Email:     "new@example.com",
		Phone:     "123",
		FirstName: "Ngozi",
		LastName:  "Eze",
		Password:  "S3curePass!",
	})
	ge := asGoError(t, err)
	if ge.Code() != goerror.CodeInvalidFormat {
		t.Fatalf("code = %v, want CodeInvalidFormat", ge.Code())
	}
}

func TestLoginSuccess(t *testing.T) {
	f := newFixture(t)

	hashed, err := f.uc.bcrypt.Hash("S3curePass!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := testUser(1)
	user.Password = string(hashed)
	user.EmailVerified = true
	f.repo.users[1] = user

	out, err := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "S3curePass!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.AccessToken == "" {
		t.Fatal("expected an access token")
	}
	if out.FullName != "Ada Obi" {
		t.Fatalf("full name = %q", out.FullName)
	}

	clm, err := f.jwt.Verify(out.AccessToken)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if clm.UserID != 1 || clm.Role != "user" {
		t.Fatalf("claims = %+v", clm)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture(t)

	hashed, err := f.uc.bcrypt.Hash("S3curePass!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := testUser(1)
	user.Password = string(hashed)
	user.EmailVerified = true
	f.repo.users[1] = user

	_, err = f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrong"})
	ge := asGoError(t, err)
	if ge.Msg() != "Invalid credentials" {
		t.Fatalf("message = %q", ge.Msg())
	}
}

func TestLoginUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever1"})
	ge := asGoError(t, err)
	if ge.Msg() != "Invalid credentials" {
		t.Fatalf("unknown users must look like bad credentials, message = %q", ge.Msg())
	}
}

func TestLoginUnverifiedEmail(t *testing.T) {
	f := newFixture(t)

	hashed, err := f.uc.bcrypt.Hash("S3curePass!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := testUser(1)
	user.Password = string(hashed)
	f.repo.users[1] = user

	_, err = f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "S3curePass!"})
	ge := asGoError(t, err)
	if ge.Code() != goerror.CodeForbidden {
		t.Fatalf("code = %v, want CodeForbidden", ge.Code())
	}
}
