package repo

import (
	"time"

	"finboard/internal/models"
)

type TransactionFilter struct {
	UserID    int64
	Category  string
	FlowType  string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// TransactionRow is a transaction joined with its category name. Amount is
// the stored magnitude; display sign adjustment happens at render time.
type TransactionRow struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Amount      float64   `json:"amount"`
	FlowType    string    `json:"flow_type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	TxnDate     time.Time `json:"txn_date"`
}

type TransactionListResult struct {
	Rows  []TransactionRow
	Total int64
	Page  int
	Limit int
}

const transactionRowSelect = "transactions.transaction_id AS id, transactions.user_id, transactions.amount, transactions.flow_type, categories.name AS category, transactions.description, transactions.txn_date"

func (r *Repository) ListTransactions(filter TransactionFilter) (*TransactionListResult, error) {
	query := r.db.Model(&models.Transaction{}).
		Joins("JOIN categories ON categories.category_id = transactions.category_id").
		Where("transactions.user_id = ?", filter.UserID)

	if filter.Category != "" {
		query = query.Where("categories.name = ?", filter.Category)
	}
	if filter.FlowType != "" {
		query = query.Where("transactions.flow_type = ?", filter.FlowType)
	}
	if filter.StartDate != nil {
		query = query.Where("transactions.txn_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transactions.txn_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	var rows []TransactionRow
	if err := query.Select(transactionRowSelect).
		Order("transactions.txn_date DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return &TransactionListResult{
		Rows:  rows,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (r *Repository) CreateTransaction(tx *models.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *Repository) GetTransactionByID(id, userID int64) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.Where("transaction_id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateTransactionFields applies a partial update; only the supplied
// columns change. Returns the number of rows touched.
func (r *Repository) UpdateTransactionFields(id, userID int64, fields map[string]any) (int64, error) {
	res := r.db.Model(&models.Transaction{}).
		Where("transaction_id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *Repository) DeleteTransaction(id, userID int64) (int64, error) {
	res := r.db.Where("transaction_id = ? AND user_id = ?", id, userID).
		Delete(&models.Transaction{})
	return res.RowsAffected, res.Error
}

// SumAmount totals stored magnitudes for one flow direction over
// [from, until).
func (r *Repository) SumAmount(userID int64, flowType string, from, until time.Time) (float64, error) {
	var total float64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND flow_type = ? AND txn_date >= ? AND txn_date < ?", userID, flowType, from, until).
		Pluck("COALESCE(SUM(amount), 0)", &total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// SumAmountForCategories totals one flow direction restricted to the named
// categories over [from, until).
func (r *Repository) SumAmountForCategories(userID int64, flowType string, names []string, from, until time.Time) (float64, error) {
	var total float64
	if err := r.db.Model(&models.Transaction{}).
		Joins("JOIN categories ON categories.category_id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.flow_type = ?", userID, flowType).
		Where("transactions.txn_date >= ? AND transactions.txn_date < ?", from, until).
		Where("categories.name IN ?", names).
		Pluck("COALESCE(SUM(transactions.amount), 0)", &total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// SpentByCategory totals spending for one category over [from, until).
func (r *Repository) SpentByCategory(userID, categoryID int64, from, until time.Time) (float64, error) {
	var total float64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND category_id = ? AND txn_date >= ? AND txn_date < ?", userID, categoryID, from, until).
		Pluck("COALESCE(SUM(amount), 0)", &total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repository) RecentTransactions(userID int64, limit int) ([]TransactionRow, error) {
	var rows []TransactionRow
	if err := r.db.Model(&models.Transaction{}).
		Joins("JOIN categories ON categories.category_id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Select(transactionRowSelect).
		Order("transactions.txn_date DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpcomingSpending lists spending transactions dated after `after` and no
// later than `until`, soonest first.
func (r *Repository) UpcomingSpending(userID int64, after, until time.Time, limit int) ([]TransactionRow, error) {
	var rows []TransactionRow
	if err := r.db.Model(&models.Transaction{}).
		Joins("JOIN categories ON categories.category_id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.flow_type = ?", userID, models.FlowSpending).
		Where("transactions.txn_date > ? AND transactions.txn_date <= ?", after, until).
		Select(transactionRowSelect).
		Order("transactions.txn_date ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
