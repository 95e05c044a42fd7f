package marketconfig

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log"

	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/entities"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// Repository stores the single global market config row (id = 1) and seeds
// the order id counter when the market is first set up.
type Repository struct {
	db     *sql.DB
	logger *log.Logger
}

var _ portsout.MarketConfigStore = (*Repository)(nil)

func NewRepository(db *sql.DB, logger *log.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Initialize(ctx context.Context, config entities.MarketConfig) *apperrors.AppError {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return apperrors.NewInternal(
			"market_config_tx_begin_failed",
			"failed to start market setup transaction",
			map[string]any{"error": err.Error()},
		)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO market_config (id, owner_address, min_increase, max_auction_duration_blocks, max_auction_duration_seconds, cancel_fee_rate)
		VALUES (1, $1, $2, $3, $4, $5)`,
		config.Owner,
		config.MinIncrease.String(),
		config.MaxAuctionDurationBlocks,
		config.MaxAuctionDurationSeconds,
		config.CancelFeeRate.String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.NewConflict(
				"market_already_initialized",
				"market config has already been set up",
				nil,
			)
		}

		return apperrors.NewInternal(
			"market_config_insert_failed",
			"failed to insert market config",
			map[string]any{"error": err.Error()},
		)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_id_counter (id, next_id)
		VALUES (1, 1)
		ON CONFLICT (id) DO NOTHING`,
	)
	if err != nil {
		return apperrors.NewInternal(
			"order_id_counter_seed_failed",
			"failed to seed order id counter",
			map[string]any{"error": err.Error()},
		)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternal(
			"market_config_tx_commit_failed",
			"failed to commit market setup transaction",
			map[string]any{"error": err.Error()},
		)
	}
	committed = true

	if r.logger != nil {
		r.logger.Printf("market config initialized owner=%s", config.Owner)
	}

	return nil
}

func (r *Repository) Get(ctx context.Context) (entities.MarketConfig, bool, *apperrors.AppError) {
	row := r.db.QueryRowContext(ctx, `
		SELECT owner_address, min_increase, max_auction_duration_blocks, max_auction_duration_seconds, cancel_fee_rate
		FROM market_config
		WHERE id = 1`,
	)

	var (
		owner            string
		minIncreaseStr   string
		maxBlocks        uint64
		maxSeconds       uint64
		cancelFeeRateStr string
	)
	err := row.Scan(&owner, &minIncreaseStr, &maxBlocks, &maxSeconds, &cancelFeeRateStr)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return entities.MarketConfig{}, false, nil
		}

		return entities.MarketConfig{}, false, apperrors.NewInternal(
			"market_config_scan_failed",
			"failed to scan market config row",
			map[string]any{"error": err.Error()},
		)
	}

	minIncrease, appErr := valueobjects.ParseRate(minIncreaseStr)
	if appErr != nil {
		return entities.MarketConfig{}, false, appErr
	}
	cancelFeeRate, appErr := valueobjects.ParseRate(cancelFeeRateStr)
	if appErr != nil {
		return entities.MarketConfig{}, false, appErr
	}

	return entities.MarketConfig{
		Owner:                     owner,
		MinIncrease:               minIncrease,
		MaxAuctionDurationBlocks:  maxBlocks,
		MaxAuctionDurationSeconds: maxSeconds,
		CancelFeeRate:             cancelFeeRate,
	}, true, nil
}

func (r *Repository) Update(ctx context.Context, config entities.MarketConfig) *apperrors.AppError {
	result, err := r.db.ExecContext(ctx, `
		UPDATE market_config
		SET owner_address = $1,
			min_increase = $2,
			max_auction_duration_blocks = $3,
			max_auction_duration_seconds = $4,
			cancel_fee_rate = $5
		WHERE id = 1`,
		config.Owner,
		config.MinIncrease.String(),
		config.MaxAuctionDurationBlocks,
		config.MaxAuctionDurationSeconds,
		config.CancelFeeRate.String(),
	)
	if err != nil {
		return apperrors.NewInternal(
			"market_config_update_failed",
			"failed to update market config",
			map[string]any{"error": err.Error()},
		)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternal(
			"market_config_update_failed",
			"failed to read market config update result",
			map[string]any{"error": err.Error()},
		)
	}
	if affected == 0 {
		return apperrors.NewMarketNotInitialized()
	}

	return nil
}
