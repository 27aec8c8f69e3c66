package queries

import (
	"context"

	"parcel-registry/internal/domain/mutation"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var ErrInvalidStatusFilter = errs.WithKind(errs.ErrInvalidInput, "Statut de mutation invalide")

type MutationQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*MutationView, error)
	ListByParcel(ctx context.Context, parcelID uuid.UUID) ([]*MutationView, error)
	List(ctx context.Context, status *string, page, pageSize int) (*MutationPage, error)
}

type MutationReadStore interface {
	FindMutation(ctx context.Context, id uuid.UUID) (*MutationView, error)
	ListMutationsByParcel(ctx context.Context, parcelID uuid.UUID) ([]*MutationView, error)
	ListMutations(ctx context.Context, status *string, limit, offset int) ([]*MutationView, int, error)
}

type mutationQueriesImpl struct {
	store MutationReadStore
}

func NewMutationQueries(store MutationReadStore) MutationQueries {
	return &mutationQueriesImpl{store: store}
}

func (q *mutationQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*MutationView, error) {
	view, err := q.store.FindMutation(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, mutation.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListByParcel is newest first.
func (q *mutationQueriesImpl) ListByParcel(ctx context.Context, parcelID uuid.UUID) ([]*MutationView, error) {
	return q.store.ListMutationsByParcel(ctx, parcelID)
}

func (q *mutationQueriesImpl) List(ctx context.Context, status *string, page, pageSize int) (*MutationPage, error) {
	if status != nil && !mutation.Status(*status).IsValid() {
		return nil, ErrInvalidStatusFilter
	}
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = defaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}

	items, total, err := q.store.ListMutations(ctx, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return &MutationPage{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}
