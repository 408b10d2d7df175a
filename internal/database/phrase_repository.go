package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Phrase categories, one per phrase-list detector.
const (
	CategoryContact = "contact"
	CategoryScam    = "scam"
	CategoryCrypto  = "crypto"
	CategoryPromo   = "promo"
)

// ErrPhraseNotFound is returned when a phrase rule id does not exist.
var ErrPhraseNotFound = errors.New("phrase rule not found")

// PhraseRule is one stored detector phrase.
type PhraseRule struct {
	ID        int       `db:"id"         json:"id"`
	Category  string    `db:"category"   json:"category"`
	Phrase    string    `db:"phrase"     json:"phrase"`
	Enabled   bool      `db:"enabled"    json:"enabled"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ValidCategory reports whether c names one of the phrase-list detectors.
func ValidCategory(c string) bool {
	switch c {
	case CategoryContact, CategoryScam, CategoryCrypto, CategoryPromo:
		return true
	}
	return false
}

// PhraseRepository handles phrase rule persistence.
type PhraseRepository struct {
	db *sqlx.DB
}

// NewPhraseRepository creates a phrase repository.
func NewPhraseRepository(db *sqlx.DB) *PhraseRepository {
	return &PhraseRepository{db: db}
}

// List returns all phrase rules, ordered by category then id.
func (r *PhraseRepository) List(ctx context.Context) ([]PhraseRule, error) {
	var rules []PhraseRule
	query := `SELECT id, category, phrase, enabled, created_at
		FROM phrase_rules ORDER BY category, id`
	if err := r.db.SelectContext(ctx, &rules, query); err != nil {
		return nil, fmt.Errorf("list phrase rules: %w", err)
	}
	return rules, nil
}

// ListEnabled returns the enabled phrases for one category.
func (r *PhraseRepository) ListEnabled(ctx context.Context, category string) ([]string, error) {
	var phrases []string
	query := r.db.Rebind(`SELECT phrase FROM phrase_rules
		WHERE category = ? AND enabled ORDER BY id`)
	if err := r.db.SelectContext(ctx, &phrases, query, category); err != nil {
		return nil, fmt.Errorf("list enabled phrases for %s: %w", category, err)
	}
	return phrases, nil
}

// Create inserts a phrase rule and fills in its generated id.
func (r *PhraseRepository) Create(ctx context.Context, rule *PhraseRule) error {
	if !ValidCategory(rule.Category) {
		return fmt.Errorf("unknown phrase category: %q", rule.Category)
	}

	if r.db.DriverName() == "postgres" {
		query := `INSERT INTO phrase_rules (category, phrase, enabled)
			VALUES ($1, $2, $3) RETURNING id, created_at`
		err := r.db.QueryRowxContext(ctx, query, rule.Category, rule.Phrase, rule.Enabled).
			Scan(&rule.ID, &rule.CreatedAt)
		if err != nil {
			return fmt.Errorf("create phrase rule: %w", err)
		}
		return nil
	}

	query := r.db.Rebind(`INSERT INTO phrase_rules (category, phrase, enabled) VALUES (?, ?, ?)`)
	res, err := r.db.ExecContext(ctx, query, rule.Category, rule.Phrase, rule.Enabled)
	if err != nil {
		return fmt.Errorf("create phrase rule: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read phrase rule id: %w", err)
	}
	rule.ID = int(id)
	return nil
}

// Delete removes a phrase rule by id.
func (r *PhraseRepository) Delete(ctx context.Context, id int) error {
	query := r.db.Rebind(`DELETE FROM phrase_rules WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete phrase rule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete phrase rule: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", ErrPhraseNotFound, id)
	}
	return nil
}

// Seed inserts the built-in phrase lists for any category that is empty, so
// a fresh database starts with working detectors.
func (r *PhraseRepository) Seed(ctx context.Context, defaults map[string][]string) error {
	for category, phrases := range defaults {
		var count int
		countQuery := r.db.Rebind(`SELECT COUNT(*) FROM phrase_rules WHERE category = ?`)
		if err := r.db.GetContext(ctx, &count, countQuery, category); err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("count phrases for %s: %w", category, err)
			}
		}
		if count > 0 {
			continue
		}
		for _, phrase := range phrases {
			rule := PhraseRule{Category: category, Phrase: phrase, Enabled: true}
			if err := r.Create(ctx, &rule); err != nil {
				return fmt.Errorf("seed %s phrases: %w", category, err)
			}
		}
	}
	return nil
}
