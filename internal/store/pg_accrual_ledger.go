package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/store/schema"
)

type pgAccrualLedger struct {
	db *gorm.DB
}

// NewPGAccrualLedger creates an accrual ledger backed by PostgreSQL
func NewPGAccrualLedger(db *gorm.DB) AccrualLedger {
	return &pgAccrualLedger{db: db}
}

// dbTime matches the microsecond precision of timestamptz so stored values compare equal to what was written
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Get returns the ledger entry of userID
func (s *pgAccrualLedger) Get(ctx context.Context, userID domain.UserID) (*schema.AccrualLedger, error) {
	var entry schema.AccrualLedger
	err := s.db.WithContext(ctx).
		Where("user_id = ?", string(userID)).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get entry of %s: %w", domain.ErrAccrualStore, userID, err)
	}
	return &entry, nil
}

// Init creates the entry if absent and returns the stored entry
func (s *pgAccrualLedger) Init(ctx context.Context, userID domain.UserID, now time.Time) (*schema.AccrualLedger, error) {
	now = dbTime(now)
	entry := schema.AccrualLedger{
		UserID:        string(userID),
		LastAccrualAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// A concurrent Init for the same user keeps the first row
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&entry).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to init entry of %s: %w", domain.ErrAccrualStore, userID, err)
	}

	stored, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: entry of %s missing after init", domain.ErrAccrualStore, userID)
	}
	return stored, nil
}

// CompareAndAccrue atomically adds amount when the stored timestamp equals expectedLast
func (s *pgAccrualLedger) CompareAndAccrue(
	ctx context.Context,
	userID domain.UserID,
	expectedLast, now time.Time,
	amount uint64,
	holdings map[domain.CollectionKey]int,
) (*schema.AccrualLedger, error) {
	now = dbTime(now)

	holdingsJSON, err := json.Marshal(holdings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal holdings: %w", err)
	}

	var entries []schema.AccrualLedger
	result := s.db.WithContext(ctx).
		Model(&entries).
		Clauses(clause.Returning{}).
		Where("user_id = ? AND last_accrual_at = ?", string(userID), dbTime(expectedLast)).
		Updates(map[string]interface{}{
			"claimable_balance": gorm.Expr("claimable_balance + ?", amount),
			"last_accrual_at":   now,
			"last_daily_rate":   amount,
			"last_holdings":     datatypes.JSON(holdingsJSON),
			"updated_at":        now,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("%w: failed to accrue for %s: %w", domain.ErrAccrualStore, userID, result.Error)
	}

	if result.RowsAffected == 0 || len(entries) == 0 {
		return nil, domain.ErrAccrualConflict
	}

	return &entries[0], nil
}
