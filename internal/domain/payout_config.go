package domain

import "time"

type PayoutFrequency string

const (
	PayoutFrequencyDaily   PayoutFrequency = "DAILY"
	PayoutFrequencyWeekly  PayoutFrequency = "WEEKLY"
	PayoutFrequencyMonthly PayoutFrequency = "MONTHLY"
	PayoutFrequencyManual  PayoutFrequency = "MANUAL"
)

// TerritoryPayoutConfig governs when a territory's pending funds become
// ready and how ready funds are batched. One active row per territory;
// deactivated rows are kept for history.
type TerritoryPayoutConfig struct {
	ID                  string
	TerritoryID         string
	RetentionPeriodDays int
	MinimumPayoutAmount int64
	MaximumPayoutAmount *int64
	Frequency           PayoutFrequency
	AutoPayoutEnabled   bool
	RequiresApproval    bool
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewTerritoryPayoutConfig(id, territoryID string, retentionDays int, minimum int64, maximum *int64, frequency PayoutFrequency) (*TerritoryPayoutConfig, error) {
	if territoryID == "" {
		return nil, ErrMissingTerritory
	}
	if retentionDays < 0 || minimum < 0 {
		return nil, ErrNegativeAmount
	}
	if maximum != nil && *maximum < minimum {
		return nil, ErrTotalsMismatch
	}
	now := time.Now()
	return &TerritoryPayoutConfig{
		ID:                  id,
		TerritoryID:         territoryID,
		RetentionPeriodDays: retentionDays,
		MinimumPayoutAmount: minimum,
		MaximumPayoutAmount: maximum,
		Frequency:           frequency,
		AutoPayoutEnabled:   true,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// RetentionElapsed reports whether funds credited at creditedAt have cleared
// the territory's chargeback buffer.
func (c *TerritoryPayoutConfig) RetentionElapsed(creditedAt, now time.Time) bool {
	return !creditedAt.AddDate(0, 0, c.RetentionPeriodDays).After(now)
}

// RetentionCutoff is the newest credit time that has already cleared
// retention as of now.
func (c *TerritoryPayoutConfig) RetentionCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -c.RetentionPeriodDays)
}

func (c *TerritoryPayoutConfig) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}

func (c *TerritoryPayoutConfig) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
}
