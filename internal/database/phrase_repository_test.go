package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func testRepo(t *testing.T) *PhraseRepository {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return NewPhraseRepository(db)
}

func TestCreateAndList(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rule := PhraseRule{Category: CategoryScam, Phrase: "free robux", Enabled: true}
	if err := repo.Create(ctx, &rule); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rule.ID == 0 {
		t.Error("Create did not fill in the id")
	}

	rules, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rules) != 1 || rules[0].Phrase != "free robux" || rules[0].Category != CategoryScam {
		t.Errorf("rules = %+v", rules)
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	repo := testRepo(t)
	rule := PhraseRule{Category: "gossip", Phrase: "anything"}
	if err := repo.Create(context.Background(), &rule); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestListEnabledFiltersByCategory(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, r := range []PhraseRule{
		{Category: CategoryContact, Phrase: "dm me", Enabled: true},
		{Category: CategoryContact, Phrase: "old bait", Enabled: false},
		{Category: CategoryScam, Phrase: "free gift", Enabled: true},
	} {
		rule := r
		if err := repo.Create(ctx, &rule); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	phrases, err := repo.ListEnabled(ctx, CategoryContact)
	if err != nil {
		t.Fatalf("ListEnabled: %v", err)
	}
	if len(phrases) != 1 || phrases[0] != "dm me" {
		t.Errorf("phrases = %v", phrases)
	}
}

func TestDelete(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rule := PhraseRule{Category: CategoryPromo, Phrase: "my mixtape", Enabled: true}
	if err := repo.Create(ctx, &rule); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, rule.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	rules, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rules) != 0 {
		t.Errorf("rules = %+v after delete", rules)
	}
}

func TestDeleteMissing(t *testing.T) {
	repo := testRepo(t)
	if err := repo.Delete(context.Background(), 9999); !errors.Is(err, ErrPhraseNotFound) {
		t.Errorf("err = %v, want ErrPhraseNotFound", err)
	}
}

func TestSeed(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	defaults := map[string][]string{
		CategoryContact: {"dm me", "whatsapp"},
		CategoryScam:    {"giveaway"},
	}
	if err := repo.Seed(ctx, defaults); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	phrases, err := repo.ListEnabled(ctx, CategoryContact)
	if err != nil {
		t.Fatalf("ListEnabled: %v", err)
	}
	if len(phrases) != 2 {
		t.Errorf("contact phrases = %v", phrases)
	}

	// Seeding again must not duplicate a populated category.
	if err := repo.Seed(ctx, defaults); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	phrases, _ = repo.ListEnabled(ctx, CategoryContact)
	if len(phrases) != 2 {
		t.Errorf("contact phrases after reseed = %v", phrases)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryContact, CategoryScam, CategoryCrypto, CategoryPromo} {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false", c)
		}
	}
	if ValidCategory("other") {
		t.Error("ValidCategory(other) = true")
	}
}
