//go:build unit || integration

package builder

import (
	"time"

	"parcel-registry/internal/domain/mutation"
	reqdto "parcel-registry/internal/handler/dto/request"
	"parcel-registry/internal/usecase/commands"
	"parcel-registry/internal/usecase/queries"

	"github.com/google/uuid"
)

type MutationBuilder struct {
	ParcelID    uuid.UUID
	Type        string
	InitiatedBy uuid.UUID
	FromOwnerID *uuid.UUID
	ToOwnerID   *uuid.UUID
	Price       *float64
	Notes       string
	Now         time.Time
}

func NewMutationBuilder() *MutationBuilder {
	to := uuid.New()
	price := 1500000.0
	return &MutationBuilder{
		ParcelID:    uuid.New(),
		Type:        string(mutation.TypeSale),
		InitiatedBy: uuid.New(),
		ToOwnerID:   &to,
		Price:       &price,
		Notes:       "Vente entre particuliers",
		Now:         time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (b *MutationBuilder) With(mutate func(*MutationBuilder)) *MutationBuilder {
	mutate(b)
	return b
}

func (b *MutationBuilder) WithType(t string) *MutationBuilder {
	b.Type = t
	return b
}

func (b *MutationBuilder) WithPrice(p float64) *MutationBuilder {
	b.Price = &p
	return b
}

func (b *MutationBuilder) WithoutPrice() *MutationBuilder {
	b.Price = nil
	return b
}

func (b *MutationBuilder) WithOwners(from, to *uuid.UUID) *MutationBuilder {
	b.FromOwnerID = from
	b.ToOwnerID = to
	return b
}

func (b *MutationBuilder) Params() mutation.NewParams {
	return mutation.NewParams{
		ParcelID:    b.ParcelID,
		Type:        mutation.Type(b.Type),
		InitiatedBy: b.InitiatedBy,
		FromOwnerID: b.FromOwnerID,
		ToOwnerID:   b.ToOwnerID,
		Price:       b.Price,
		Notes:       b.Notes,
	}
}

func (b *MutationBuilder) BuildDomain() (*mutation.Mutation, error) {
	return mutation.New(b.Params(), b.Now)
}

// Input is the command-side request for the same mutation; InitiatedBy and
// Now are supplied by the caller there.
func (b *MutationBuilder) Input() commands.CreateMutationInput {
	return commands.CreateMutationInput{
		ParcelID:    b.ParcelID,
		Type:        b.Type,
		FromOwnerID: b.FromOwnerID,
		ToOwnerID:   b.ToOwnerID,
		Price:       b.Price,
		Notes:       b.Notes,
	}
}

func (b *MutationBuilder) BuildCreateRequestDTO() reqdto.CreateMutationRequest {
	notes := b.Notes
	return reqdto.CreateMutationRequest{
		ParcelID:     b.ParcelID,
		MutationType: b.Type,
		FromOwnerID:  b.FromOwnerID,
		ToOwnerID:    b.ToOwnerID,
		Price:        b.Price,
		Notes:        &notes,
	}
}

// BuildSnapshot panics on invalid builder state; it is meant for handler
// tests that only need a well-formed command result.
func (b *MutationBuilder) BuildSnapshot() *mutation.Snapshot {
	m, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	snap := m.Snapshot()
	return &snap
}

func (b *MutationBuilder) BuildView() *queries.MutationView {
	return queries.NewMutationView(*b.BuildSnapshot())
}
