package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/payment-risk-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const transactionColumns = `id, user_id, amount, currency, source, email, status,
		 COALESCE(provider, ''), risk_score, COALESCE(risk_explanation, ''), created_at, updated_at`

// TransactionRepository реализует domain.TransactionRepository
type TransactionRepository struct {
	db DBTX
}

// NewTransactionRepository создает новый TransactionRepository
func NewTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateTransaction сохраняет принятую транзакцию
func (r *TransactionRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO transactions (id, user_id, amount, currency, source, email, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		tx.ID, tx.UserID, tx.Amount, tx.Currency, tx.Source, tx.Email, tx.Status, tx.CreatedAt, tx.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrTransactionExists
		}
		return fmt.Errorf("repository: failed to create transaction %q: %w", tx.ID, err)
	}

	return nil
}

// GetTransactionByID получает транзакцию по идентификатору
func (r *TransactionRepository) GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	tx := &domain.Transaction{}

	err := r.db.QueryRow(ctx,
		`SELECT `+transactionColumns+`
		 FROM transactions
		 WHERE id = $1`,
		id,
	).Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Currency, &tx.Source, &tx.Email,
		&tx.Status, &tx.Provider, &tx.RiskScore, &tx.RiskExplanation, &tx.CreatedAt, &tx.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("repository: failed to get transaction %q: %w", id, err)
	}

	return tx, nil
}

// GetTransactionsByUserID получает транзакции пользователя, новые первыми
func (r *TransactionRepository) GetTransactionsByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+transactionColumns+`
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// UpdateTransactionResult фиксирует решение конвейера по транзакции
func (r *TransactionRepository) UpdateTransactionResult(ctx context.Context, tx *domain.Transaction) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE transactions
		 SET status = $2, provider = $3, risk_score = $4, risk_explanation = $5, updated_at = $6
		 WHERE id = $1`,
		tx.ID, tx.Status, tx.Provider, tx.RiskScore, tx.RiskExplanation, tx.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to update transaction %q: %w", tx.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// GetUndecidedTransactions возвращает транзакции, оставшиеся в PENDING без
// оценки риска и созданные до cutoff. Их дообрабатывает фоновый воркер.
func (r *TransactionRepository) GetUndecidedTransactions(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+transactionColumns+`
		 FROM transactions
		 WHERE status = 'PENDING' AND risk_score IS NULL AND created_at < $1
		 ORDER BY created_at ASC`,
		cutoff,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get undecided transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		tx := domain.Transaction{}
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Currency, &tx.Source, &tx.Email,
			&tx.Status, &tx.Provider, &tx.RiskScore, &tx.RiskExplanation, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return transactions, nil
}
