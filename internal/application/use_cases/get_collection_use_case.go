package use_cases

import (
	"context"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type getCollectionUseCase struct {
	catalog portsout.CollectionCatalog
}

func NewGetCollectionUseCase(catalog portsout.CollectionCatalog) portsin.GetCollectionUseCase {
	return &getCollectionUseCase{catalog: catalog}
}

func (u *getCollectionUseCase) Execute(ctx context.Context, query dto.GetCollectionQuery) (dto.CollectionResource, *apperrors.AppError) {
	if u.catalog == nil {
		return dto.CollectionResource{}, apperrors.NewInternal(
			"collection_catalog_missing",
			"collection catalog is required",
			nil,
		)
	}

	collection, appErr := valueobjects.NormalizeAddress("collection_address", query.Collection)
	if appErr != nil {
		return dto.CollectionResource{}, appErr
	}

	info, found, appErr := u.catalog.Get(ctx, collection)
	if appErr != nil {
		return dto.CollectionResource{}, appErr
	}
	if !found {
		return dto.CollectionResource{}, apperrors.NewCollectionNotFound(collection)
	}

	return collectionResource(info), nil
}
