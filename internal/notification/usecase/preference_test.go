package usecase

import (
	"context"
	"testing"

	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

func TestPreferenceGetSeedsDefault(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.PreferenceGet(userCtx(10))
	if err != nil {
		t.Fatalf("preference get: %v", err)
	}

	if !out.OptedIn {
		t.Fatal("default preference must be opted in")
	}
	if len(out.Categories) != 1 || out.Categories[0] != "promotional" {
		t.Fatalf("categories = %v", out.Categories)
	}
	if out.Email != "ada@example.com" {
		t.Fatalf("email = %q", out.Email)
	}

	if _, ok := f.repo.preferences[10]; !ok {
		t.Fatal("default preference must be persisted")
	}
}

func TestPreferenceGetExisting(t *testing.T) {
	f := newFixture(t)
	seedSubscriber(f.repo, 10, "stored@example.com", entity.CategoryNewsletter)

	out, err := f.uc.PreferenceGet(userCtx(10))
	if err != nil {
		t.Fatalf("preference get: %v", err)
	}
	if out.Email != "stored@example.com" {
		t.Fatalf("email = %q, stored record must win over claims", out.Email)
	}
	if len(out.Categories) != 1 || out.Categories[0] != "newsletter" {
		t.Fatalf("categories = %v", out.Categories)
	}
}

func TestPreferenceUpdateOptOut(t *testing.T) {
	f := newFixture(t)
	seedSubscriber(f.repo, 10, "ada@example.com")

	err := f.uc.PreferenceUpdate(userCtx(10), PreferenceUpdateInput{
		OptedIn:    false,
		Categories: []string{"promotional", "newsletter"},
	})
	if err != nil {
		t.Fatalf("preference update: %v", err)
	}

	p := f.repo.preferences[10]
	if p.OptedIn {
		t.Fatal("preference must be opted out")
	}
	if p.OptOutAt == nil || !p.OptOutAt.Equal(f.clock.now) {
		t.Fatalf("opt-out time = %v, want %v", p.OptOutAt, f.clock.now)
	}
	if len(p.Categories) != 2 {
		t.Fatalf("categories = %v", p.Categories)
	}
}

func TestPreferenceUpdateOptInClearsNothing(t *testing.T) {
	f := newFixture(t)
	seedSubscriber(f.repo, 10, "ada@example.com")

	err := f.uc.PreferenceUpdate(userCtx(10), PreferenceUpdateInput{
		OptedIn:    true,
		Categories: []string{"product_update"},
	})
	if err != nil {
		t.Fatalf("preference update: %v", err)
	}

	p := f.repo.preferences[10]
	if !p.OptedIn || p.OptOutAt != nil {
		t.Fatalf("preference = %+v", p)
	}
}

func TestPreferenceUpdateRejectsUnknownCategory(t *testing.T) {
	f := newFixture(t)
	seedSubscriber(f.repo, 10, "ada@example.com")

	err := f.uc.PreferenceUpdate(userCtx(10), PreferenceUpdateInput{
		OptedIn:    true,
		Categories: []string{"spam"},
	})
	ge := asGoError(t, err)
	if ge.Code() != goerror.CodeInvalidInput {
		t.Fatalf("code = %v, want CodeInvalidInput", ge.Code())
	}
}

func TestPreferenceUpdateMissingRecord(t *testing.T) {
	f := newFixture(t)

	err := f.uc.PreferenceUpdate(userCtx(99), PreferenceUpdateInput{OptedIn: true})
	ge := asGoError(t, err)
	if ge.Msg() != "Preference not found" {
		t.Fatalf("message = %q", ge.Msg())
	}
}

func TestPreferenceRequiresAuth(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.PreferenceGet(context.Background())
	if asGoError(t, err).Code() != goerror.CodeUnauthorized {
		t.Fatal("anonymous preference read must be unauthorized")
	}
}

func TestConsumeUserRegisteredSeedsPreference(t *testing.T) {
	f := newFixture(t)

	err := f.uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{
		UserID:    42,
		Email:     "New@Example.com",
		FirstName: "Ngozi",
	})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}

	p := f.repo.preferences[42]
	if p == nil {
		t.Fatal("preference must be created")
	}
	if p.Email != "new@example.com" {
		t.Fatalf("email = %q, want lowercased", p.Email)
	}
	if !p.WantsCategory(entity.CategoryPromotional) {
		t.Fatal("default preference must include promotional")
	}
}

func TestConsumeUserRegisteredDropsMalformedPayload(t *testing.T) {
	f := newFixture(t)

	err := f.uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{
		UserID: 0,
		Email:  "not-an-email",
	})
	if err != nil {
		t.Fatalf("malformed payload must be dropped, not redelivered: %v", err)
	}
	if len(f.repo.preferences) != 0 {
		t.Fatal("no preference may be created from a malformed payload")
	}
}

func TestConsumeUserRegisteredIdempotentOnRedelivery(t *testing.T) {
	f := newFixture(t)

	in := ConsumeUserRegisteredInput{UserID: 42, Email: "a@example.com", FirstName: "A"}
	if err := f.uc.ConsumeUserRegistered(context.Background(), in); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if err := f.uc.ConsumeUserRegistered(context.Background(), in); err != nil {
		t.Fatalf("redelivery must be a no-op: %v", err)
	}
	if len(f.repo.preferences) != 1 {
		t.Fatalf("preferences = %d, want 1", len(f.repo.preferences))
	}
}
