package collectioncatalog

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"log"

	"nftmarket/internal/adapters/outbound/persistence/postgresql/records"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/entities"
	apperrors "nftmarket/internal/shared_kernel/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db     *sql.DB
	logger *log.Logger
}

var _ portsout.CollectionCatalog = (*Repository)(nil)

func NewRepository(db *sql.DB, logger *log.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Create(ctx context.Context, info entities.CollectionInfo) *apperrors.AppError {
	assetsJSON, royaltiesJSON, appErr := encodeColumns(info)
	if appErr != nil {
		return appErr
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO collections (address, supported_assets, royalties)
		VALUES ($1, $2, $3)`,
		info.Collection, assetsJSON, royaltiesJSON,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.NewCollectionExist(info.Collection)
		}

		return apperrors.NewInternal(
			"collection_insert_failed",
			"failed to insert collection",
			map[string]any{"error": err.Error(), "collection": info.Collection},
		)
	}

	if r.logger != nil {
		r.logger.Printf("collection registered collection=%s supported_assets=%d royalties=%d",
			info.Collection, len(info.SupportedAssets), len(info.Royalties))
	}

	return nil
}

func (r *Repository) Get(ctx context.Context, collection string) (entities.CollectionInfo, bool, *apperrors.AppError) {
	row := r.db.QueryRowContext(ctx, `
		SELECT address, supported_assets, royalties
		FROM collections
		WHERE address = $1`,
		collection,
	)

	info, appErr := scanCollection(row)
	if appErr != nil {
		if appErr.Code == "collection_row_missing" {
			return entities.CollectionInfo{}, false, nil
		}

		return entities.CollectionInfo{}, false, appErr
	}

	return info, true, nil
}

func (r *Repository) Update(ctx context.Context, info entities.CollectionInfo) *apperrors.AppError {
	assetsJSON, royaltiesJSON, appErr := encodeColumns(info)
	if appErr != nil {
		return appErr
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE collections
		SET supported_assets = $1, royalties = $2
		WHERE address = $3`,
		assetsJSON, royaltiesJSON, info.Collection,
	)
	if err != nil {
		return apperrors.NewInternal(
			"collection_update_failed",
			"failed to update collection",
			map[string]any{"error": err.Error(), "collection": info.Collection},
		)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternal(
			"collection_update_failed",
			"failed to read collection update result",
			map[string]any{"error": err.Error(), "collection": info.Collection},
		)
	}
	if affected == 0 {
		return apperrors.NewCollectionNotFound(info.Collection)
	}

	return nil
}

func (r *Repository) List(ctx context.Context, filter portsout.CollectionListFilter) ([]entities.CollectionInfo, *apperrors.AppError) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT address, supported_assets, royalties
		FROM collections
		WHERE address > $1
		ORDER BY address ASC
		LIMIT $2`,
		filter.StartAfter, filter.Limit,
	)
	if err != nil {
		return nil, apperrors.NewInternal(
			"collection_list_failed",
			"failed to list collections",
			map[string]any{"error": err.Error()},
		)
	}
	defer rows.Close()

	collections := make([]entities.CollectionInfo, 0, filter.Limit)
	for rows.Next() {
		info, appErr := scanCollection(rows)
		if appErr != nil {
			return nil, appErr
		}
		collections = append(collections, info)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternal(
			"collection_list_failed",
			"failed to iterate collection rows",
			map[string]any{"error": err.Error()},
		)
	}

	return collections, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollection(row rowScanner) (entities.CollectionInfo, *apperrors.AppError) {
	var (
		address       string
		assetsJSON    []byte
		royaltiesJSON []byte
	)

	err := row.Scan(&address, &assetsJSON, &royaltiesJSON)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return entities.CollectionInfo{}, apperrors.NewInternal("collection_row_missing", "collection row not found", nil)
		}

		return entities.CollectionInfo{}, apperrors.NewInternal(
			"collection_scan_failed",
			"failed to scan collection row",
			map[string]any{"error": err.Error()},
		)
	}

	var assetRecords []records.AssetInfoRecord
	if err := json.Unmarshal(assetsJSON, &assetRecords); err != nil {
		return entities.CollectionInfo{}, apperrors.NewInternal(
			"collection_decode_failed",
			"stored supported assets are invalid",
			map[string]any{"error": err.Error(), "collection": address},
		)
	}
	supportedAssets, appErr := records.DecodeAssetInfos(assetRecords)
	if appErr != nil {
		return entities.CollectionInfo{}, appErr
	}

	var royaltyRecords []records.RoyaltyRecord
	if err := json.Unmarshal(royaltiesJSON, &royaltyRecords); err != nil {
		return entities.CollectionInfo{}, apperrors.NewInternal(
			"collection_decode_failed",
			"stored royalties are invalid",
			map[string]any{"error": err.Error(), "collection": address},
		)
	}
	royalties, appErr := records.DecodeRoyalties(royaltyRecords)
	if appErr != nil {
		return entities.CollectionInfo{}, appErr
	}

	return entities.CollectionInfo{
		Collection:      address,
		SupportedAssets: supportedAssets,
		Royalties:       royalties,
	}, nil
}

func encodeColumns(info entities.CollectionInfo) ([]byte, []byte, *apperrors.AppError) {
	assetsJSON, err := json.Marshal(records.EncodeAssetInfos(info.SupportedAssets))
	if err != nil {
		return nil, nil, apperrors.NewInternal(
			"collection_encode_failed",
			"failed to encode supported assets",
			map[string]any{"error": err.Error(), "collection": info.Collection},
		)
	}

	royaltiesJSON, err := json.Marshal(records.EncodeRoyalties(info.Royalties))
	if err != nil {
		return nil, nil, apperrors.NewInternal(
			"collection_encode_failed",
			"failed to encode royalties",
			map[string]any{"error": err.Error(), "collection": info.Collection},
		)
	}

	return assetsJSON, royaltiesJSON, nil
}
