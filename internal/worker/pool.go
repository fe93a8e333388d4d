package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/payment-risk-gateway/internal/domain"
	"go.uber.org/zap"
)

// PoolConfig содержит параметры пула воркеров
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
	RetryAge     time.Duration
}

// Pool дообрабатывает транзакции, которые остались без решения:
// приняты в PENDING, но результат конвейера не был зафиксирован
// (например, процесс упал между приемом и записью решения)
type Pool struct {
	cfg       PoolConfig
	queue     chan string
	txRepo    domain.TransactionRepository
	processor domain.TransactionProcessor
	logger    *zap.Logger
	cancel    context.CancelFunc
	scanWg    sync.WaitGroup
	wg        sync.WaitGroup
}

// NewPool создает новый worker pool
func NewPool(
	cfg PoolConfig,
	txRepo domain.TransactionRepository,
	processor domain.TransactionProcessor,
	logger *zap.Logger,
) *Pool {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = 10 * time.Second
	}
	if cfg.RetryAge <= 0 {
		cfg.RetryAge = time.Minute
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 100
	}
	return &Pool{
		cfg:       cfg,
		queue:     make(chan string, cfg.QueueSize),
		txRepo:    txRepo,
		processor: processor,
		logger:    logger,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	// Запускаем воркеры
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер недообработанных транзакций
	p.scanWg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool. Сканер завершается до закрытия
// очереди: отправка в закрытый канал недопустима
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.scanWg.Wait()
	close(p.queue)
	p.wg.Wait()
}

// worker обрабатывает транзакции из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case txID, ok := <-p.queue:
			if !ok {
				return
			}
			p.processTransaction(ctx, txID)
		}
	}
}

// scanner периодически собирает транзакции без решения
func (p *Pool) scanner(ctx context.Context) {
	defer p.scanWg.Done()

	ticker := time.NewTicker(p.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanUndecided(ctx)
		}
	}
}

// scanUndecided отправляет в очередь транзакции старше RetryAge,
// оставшиеся без оценки риска
func (p *Pool) scanUndecided(ctx context.Context) {
	cutoff := time.Now().Add(-p.cfg.RetryAge)
	transactions, err := p.txRepo.GetUndecidedTransactions(ctx, cutoff)
	if err != nil {
		p.logger.Error("failed to get undecided transactions", zap.Error(err))
		return
	}

	for _, tx := range transactions {
		select {
		case p.queue <- tx.ID:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, транзакция попадет в следующий скан
			p.logger.Warn("queue is full, skipping transaction", zap.String("transaction_id", tx.ID))
		}
	}
}

// processTransaction прогоняет одну транзакцию через конвейер заново
func (p *Pool) processTransaction(ctx context.Context, txID string) {
	p.logger.Debug("reprocessing transaction", zap.String("transaction_id", txID))

	tx, err := p.txRepo.GetTransactionByID(ctx, txID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return
		}
		p.logger.Error("failed to get transaction",
			zap.String("transaction_id", txID),
			zap.Error(err),
		)
		return
	}

	// Между сканом и обработкой решение могло появиться
	if tx.Status != domain.TransactionStatusPending || tx.RiskScore != nil {
		return
	}

	processed := p.processor.Process(ctx, tx)

	if err := p.txRepo.UpdateTransactionResult(ctx, processed); err != nil {
		p.logger.Error("failed to persist reprocessing result",
			zap.String("transaction_id", txID),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("transaction reprocessed",
		zap.String("transaction_id", txID),
		zap.String("status", string(processed.Status)),
	)
}
