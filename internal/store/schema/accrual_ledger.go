package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AccrualLedger represents the accrual_ledger table - one row per user
type AccrualLedger struct {
	// UserID is the Discord user id owning the entry
	UserID string `gorm:"column:user_id;primaryKey;type:text"`
	// ClaimableBalance is the accrued reward in BUX, never decreases
	ClaimableBalance uint64 `gorm:"column:claimable_balance;not null;default:0;type:bigint"`
	// LastAccrualAt is when the balance last accrued, or when the entry was created
	LastAccrualAt time.Time `gorm:"column:last_accrual_at;not null;type:timestamptz"`
	// LastDailyRate is the amount added by the last accrual
	LastDailyRate uint64 `gorm:"column:last_daily_rate;not null;default:0;type:bigint"`
	// LastHoldings stores the per-collection counts the last accrual was computed from
	// Format: {"celebcatz": 2, "fcked_catz": 1}
	LastHoldings datatypes.JSON `gorm:"column:last_holdings;type:jsonb"`
	// CreatedAt is when the entry was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the entry was last modified
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AccrualLedger model
func (AccrualLedger) TableName() string {
	return "accrual_ledger"
}
