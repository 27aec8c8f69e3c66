package queries

import (
	"context"

	"parcel-registry/internal/infra"

	"github.com/google/uuid"
)

type OwnershipQueries interface {
	GetOwnershipHistory(ctx context.Context, parcelID uuid.UUID) ([]*OwnershipHistoryView, error)
}

type HistoryReadStore interface {
	ListOwnershipHistory(ctx context.Context, parcelID uuid.UUID) ([]*OwnershipHistoryView, error)
}

type ownershipQueriesImpl struct {
	parcels ParcelReadStore
	history HistoryReadStore
}

func NewOwnershipQueries(parcels ParcelReadStore, history HistoryReadStore) OwnershipQueries {
	return &ownershipQueriesImpl{parcels: parcels, history: history}
}

func (q *ownershipQueriesImpl) GetOwnershipHistory(ctx context.Context, parcelID uuid.UUID) ([]*OwnershipHistoryView, error) {
	if _, err := q.parcels.FindParcel(ctx, parcelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrParcelNotFound
		}
		return nil, err
	}
	return q.history.ListOwnershipHistory(ctx, parcelID)
}
