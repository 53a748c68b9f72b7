package models

import "time"

// Flow direction tags shared by transactions and categories.
const (
	FlowIncome   = "Income"
	FlowSpending = "Spending"
)

// Goal priorities as stored.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Account balances are maintained externally; this layer only reads them.
type Account struct {
	ID             int64     `json:"id"              gorm:"primaryKey;column:account_id"`
	UserID         int64     `json:"user_id"         gorm:"index"`
	Name           string    `json:"name"`
	CurrentBalance float64   `json:"current_balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Category struct {
	ID       int64  `json:"id"        gorm:"primaryKey;column:category_id"`
	Name     string `json:"name"      gorm:"uniqueIndex:idx_category_name_flow"`
	FlowType string `json:"flow_type" gorm:"uniqueIndex:idx_category_name_flow"`
}

// Transaction stores a non-negative magnitude; direction is carried by
// FlowType, never by a negative amount.
type Transaction struct {
	ID          int64     `json:"id"          gorm:"primaryKey;column:transaction_id"`
	UserID      int64     `json:"user_id"     gorm:"index"`
	AccountID   int64     `json:"account_id"  gorm:"index"`
	CategoryID  int64     `json:"category_id" gorm:"index"`
	TxnDate     time.Time `json:"txn_date"    gorm:"index"`
	FlowType    string    `json:"flow_type"   gorm:"index"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Budget is keyed by (user, category, period_start); the unique index backs
// the ON CONFLICT upsert.
type Budget struct {
	ID             int64     `json:"id"              gorm:"primaryKey;column:budget_id"`
	UserID         int64     `json:"user_id"         gorm:"uniqueIndex:idx_budget_owner_category_period"`
	CategoryID     int64     `json:"category_id"     gorm:"uniqueIndex:idx_budget_owner_category_period"`
	PeriodStart    time.Time `json:"period_start"    gorm:"uniqueIndex:idx_budget_owner_category_period"`
	BudgetAmount   float64   `json:"budget_amount"`
	AlertThreshold float64   `json:"alert_threshold"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Holding has no purchase-date column; reads render a fixed placeholder date.
type Holding struct {
	ID          int64     `json:"id"           gorm:"primaryKey;column:holding_id"`
	UserID      int64     `json:"user_id"      gorm:"index"`
	AccountID   int64     `json:"account_id"   gorm:"index"`
	ProductName string    `json:"product_name"`
	AssetType   string    `json:"asset_type"   gorm:"index"`
	Quantity    float64   `json:"quantity"`
	UnitCost    float64   `json:"unit_cost"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HoldingPrice is an append-only close-price series written outside this
// layer; the current price is the row with the greatest PriceDate.
type HoldingPrice struct {
	ID         int64     `json:"id"          gorm:"primaryKey"`
	HoldingID  int64     `json:"holding_id"  gorm:"index:idx_holding_price_date"`
	PriceDate  time.Time `json:"price_date"  gorm:"index:idx_holding_price_date"`
	ClosePrice float64   `json:"close_price"`
	CreatedAt  time.Time `json:"created_at"`
}

type Goal struct {
	ID            int64      `json:"id"             gorm:"primaryKey;column:goal_id"`
	UserID        int64      `json:"user_id"        gorm:"index"`
	GoalName      string     `json:"goal_name"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	Deadline      *time.Time `json:"deadline"`
	Priority      string     `json:"priority"`
	GoalType      string     `json:"goal_type"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NetWorthSnapshot is a read-only series written by an external job.
type NetWorthSnapshot struct {
	ID           int64     `json:"id"            gorm:"primaryKey"`
	UserID       int64     `json:"user_id"       gorm:"index:idx_networth_user_date"`
	SnapshotDate time.Time `json:"snapshot_date" gorm:"index:idx_networth_user_date"`
	NetWorth     float64   `json:"net_worth"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}

func (Category) TableName() string {
	return "categories"
}

func (Transaction) TableName() string {
	return "transactions"
}

func (Budget) TableName() string {
	return "budgets"
}

func (Holding) TableName() string {
	return "holdings"
}

func (HoldingPrice) TableName() string {
	return "holding_prices"
}

func (Goal) TableName() string {
	return "goals"
}

func (NetWorthSnapshot) TableName() string {
	return "net_worth_snapshots"
}
