package orderledger

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"log"
	"strconv"

	"nftmarket/internal/adapters/outbound/persistence/postgresql/records"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/entities"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type Repository struct {
	db     *sql.DB
	logger *log.Logger
}

var _ portsout.OrderLedger = (*Repository)(nil)

func NewRepository(db *sql.DB, logger *log.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Create(ctx context.Context, order entities.Order) (orderID uint64, appErr *apperrors.AppError) {
	fixedPriceJSON, auctionJSON, appErr := encodeOrderColumns(order)
	if appErr != nil {
		return 0, appErr
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return 0, apperrors.NewInternal(
			"order_tx_begin_failed",
			"failed to start order creation transaction",
			map[string]any{"error": err.Error()},
		)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// The counter row is the id authority. Locking it serializes concurrent
	// listings so ids stay dense and monotonic.
	row := tx.QueryRowContext(ctx, `SELECT next_id FROM order_id_counter WHERE id = 1 FOR UPDATE`)
	if err := row.Scan(&orderID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.NewMarketNotInitialized()
		}

		return 0, apperrors.NewInternal(
			"order_id_allocation_failed",
			"failed to allocate order id",
			map[string]any{"error": err.Error()},
		)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, seller_address, collection_address, item_id, fixed_price, auction)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		orderID, order.Seller, order.Collection, order.ItemID, fixedPriceJSON, auctionJSON,
	)
	if err != nil {
		return 0, apperrors.NewInternal(
			"order_insert_failed",
			"failed to insert order",
			map[string]any{"error": err.Error(), "order_id": orderID},
		)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_seller_index (seller_address, order_id)
		VALUES ($1, $2)`,
		order.Seller, orderID,
	)
	if err != nil {
		return 0, apperrors.NewInternal(
			"order_seller_index_insert_failed",
			"failed to index order by seller",
			map[string]any{"error": err.Error(), "order_id": orderID},
		)
	}

	_, err = tx.ExecContext(ctx, `UPDATE order_id_counter SET next_id = $1 WHERE id = 1`, orderID+1)
	if err != nil {
		return 0, apperrors.NewInternal(
			"order_id_advance_failed",
			"failed to advance order id counter",
			map[string]any{"error": err.Error()},
		)
	}

	if err := tx.Commit(); err != nil {
		return 0, apperrors.NewInternal(
			"order_tx_commit_failed",
			"failed to commit order creation transaction",
			map[string]any{"error": err.Error()},
		)
	}
	committed = true

	if r.logger != nil {
		r.logger.Printf("order created order_id=%d seller=%s collection=%s item_id=%s",
			orderID, order.Seller, order.Collection, order.ItemID)
	}

	return orderID, nil
}

func (r *Repository) Get(ctx context.Context, orderID uint64) (entities.Order, bool, *apperrors.AppError) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, seller_address, collection_address, item_id, fixed_price, auction
		FROM orders
		WHERE id = $1`,
		orderID,
	)

	order, appErr := scanOrder(row)
	if appErr != nil {
		if appErr.Code == "order_row_missing" {
			return entities.Order{}, false, nil
		}

		return entities.Order{}, false, appErr
	}

	return order, true, nil
}

func (r *Repository) UpdateAuction(ctx context.Context, orderID uint64, auction entities.AuctionInfo) *apperrors.AppError {
	auctionJSON, err := json.Marshal(records.EncodeAuction(auction))
	if err != nil {
		return apperrors.NewInternal(
			"auction_encode_failed",
			"failed to encode auction state",
			map[string]any{"error": err.Error(), "order_id": orderID},
		)
	}

	result, err := r.db.ExecContext(ctx, `UPDATE orders SET auction = $1 WHERE id = $2`, auctionJSON, orderID)
	if err != nil {
		return apperrors.NewInternal(
			"auction_update_failed",
			"failed to update auction state",
			map[string]any{"error": err.Error(), "order_id": orderID},
		)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternal(
			"auction_update_failed",
			"failed to read auction update result",
			map[string]any{"error": err.Error(), "order_id": orderID},
		)
	}
	if affected == 0 {
		return apperrors.NewOrderNotFound(orderID)
	}

	return nil
}

func (r *Repository) Remove(ctx context.Context, orderID uint64) *apperrors.AppError {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return apperrors.NewInternal(
			"order_tx_begin_failed",
			"failed to start order removal transaction",
			map[string]any{"error": err.Error()},
		)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `DELETE FROM order_seller_index WHERE order_id = $1`, orderID)
	if err != nil {
		return apperrors.NewInternal(
			"order_seller_index_delete_failed",
			"failed to remove order seller index entry",
			map[string]any{"error": err.Error(), "order_id": orderID},
		)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return apperrors.NewInternal(
			"order_delete_failed",
			"failed to remove order",
			map[string]any{"error": err.Error(), "order_id": orderID},
		)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternal(
			"order_delete_failed",
			"failed to read order removal result",
			map[string]any{"error": err.Error(), "order_id": orderID},
		)
	}
	if affected == 0 {
		return apperrors.NewOrderNotFound(orderID)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternal(
			"order_tx_commit_failed",
			"failed to commit order removal transaction",
			map[string]any{"error": err.Error(), "order_id": orderID},
		)
	}
	committed = true

	return nil
}

func (r *Repository) List(ctx context.Context, filter portsout.OrderListFilter) ([]entities.Order, *apperrors.AppError) {
	query := `
		SELECT o.id, o.seller_address, o.collection_address, o.item_id, o.fixed_price, o.auction
		FROM orders o`
	args := make([]any, 0, 3)

	if filter.Seller != "" {
		query += `
		JOIN order_seller_index s ON s.order_id = o.id
		WHERE s.seller_address = $1`
		args = append(args, filter.Seller)
	} else {
		query += `
		WHERE TRUE`
	}

	startAfter := uint64(0)
	if filter.StartAfter != nil {
		startAfter = *filter.StartAfter
	}
	args = append(args, startAfter)
	query += ` AND o.id > $` + strconv.Itoa(len(args))

	args = append(args, filter.Limit)
	query += `
		ORDER BY o.id ASC
		LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternal(
			"order_list_failed",
			"failed to list orders",
			map[string]any{"error": err.Error()},
		)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, filter.Limit)
	for rows.Next() {
		order, appErr := scanOrder(rows)
		if appErr != nil {
			return nil, appErr
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternal(
			"order_list_failed",
			"failed to iterate order rows",
			map[string]any{"error": err.Error()},
		)
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (entities.Order, *apperrors.AppError) {
	var (
		order          entities.Order
		fixedPriceJSON []byte
		auctionJSON    []byte
	)

	err := row.Scan(&order.ID, &order.Seller, &order.Collection, &order.ItemID, &fixedPriceJSON, &auctionJSON)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return entities.Order{}, apperrors.NewInternal("order_row_missing", "order row not found", nil)
		}

		return entities.Order{}, apperrors.NewInternal(
			"order_scan_failed",
			"failed to scan order row",
			map[string]any{"error": err.Error()},
		)
	}

	if len(fixedPriceJSON) > 0 {
		var record records.AssetRecord
		if err := json.Unmarshal(fixedPriceJSON, &record); err != nil {
			return entities.Order{}, apperrors.NewInternal(
				"order_decode_failed",
				"stored fixed price is invalid",
				map[string]any{"error": err.Error(), "order_id": order.ID},
			)
		}
		price, appErr := records.DecodeAsset(record)
		if appErr != nil {
			return entities.Order{}, appErr
		}
		order.FixedPrice = &price
	}

	if len(auctionJSON) > 0 {
		var record records.AuctionRecord
		if err := json.Unmarshal(auctionJSON, &record); err != nil {
			return entities.Order{}, apperrors.NewInternal(
				"order_decode_failed",
				"stored auction state is invalid",
				map[string]any{"error": err.Error(), "order_id": order.ID},
			)
		}
		auction, appErr := records.DecodeAuction(record)
		if appErr != nil {
			return entities.Order{}, appErr
		}
		order.Auction = &auction
	}

	return order, nil
}

func encodeOrderColumns(order entities.Order) ([]byte, []byte, *apperrors.AppError) {
	var fixedPriceJSON, auctionJSON []byte

	if order.FixedPrice != nil {
		encoded, err := json.Marshal(records.EncodeAsset(*order.FixedPrice))
		if err != nil {
			return nil, nil, apperrors.NewInternal(
				"order_encode_failed",
				"failed to encode fixed price",
				map[string]any{"error": err.Error()},
			)
		}
		fixedPriceJSON = encoded
	}

	if order.Auction != nil {
		encoded, err := json.Marshal(records.EncodeAuction(*order.Auction))
		if err != nil {
			return nil, nil, apperrors.NewInternal(
				"order_encode_failed",
				"failed to encode auction state",
				map[string]any{"error": err.Error()},
			)
		}
		auctionJSON = encoded
	}

	return fixedPriceJSON, auctionJSON, nil
}
