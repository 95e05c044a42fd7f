package use_cases

import (
	"context"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type listCollectionsUseCase struct {
	catalog portsout.CollectionCatalog
}

func NewListCollectionsUseCase(catalog portsout.CollectionCatalog) portsin.ListCollectionsUseCase {
	return &listCollectionsUseCase{catalog: catalog}
}

func (u *listCollectionsUseCase) Execute(ctx context.Context, query dto.ListCollectionsQuery) (dto.CollectionListResource, *apperrors.AppError) {
	if u.catalog == nil {
		return dto.CollectionListResource{}, apperrors.NewInternal(
			"collection_catalog_missing",
			"collection catalog is required",
			nil,
		)
	}

	filter := portsout.CollectionListFilter{Limit: clampPageLimit(query.Limit)}
	if query.StartAfter != "" {
		startAfter, appErr := valueobjects.NormalizeAddress("start_after", query.StartAfter)
		if appErr != nil {
			return dto.CollectionListResource{}, appErr
		}
		filter.StartAfter = startAfter
	}

	infos, appErr := u.catalog.List(ctx, filter)
	if appErr != nil {
		return dto.CollectionListResource{}, appErr
	}

	resources := make([]dto.CollectionResource, 0, len(infos))
	for _, info := range infos {
		resources = append(resources, collectionResource(info))
	}

	return dto.CollectionListResource{Collections: resources}, nil
}
