package memstore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"parcel-registry/internal/domain/user"

	"github.com/google/uuid"
)

// Seed is the fixture format accepted by LoadSeed. Users and parcels live in
// the wider registry, so the memory store needs them handed in at start.
type Seed struct {
	Users []struct {
		ID     uuid.UUID `json:"id"`
		Role   string    `json:"role"`
		Active *bool     `json:"active"`
	} `json:"users"`
	Parcels []struct {
		ID        uuid.UUID  `json:"id"`
		Reference string     `json:"reference"`
		OwnerID   *uuid.UUID `json:"owner_id"`
	} `json:"parcels"`
}

func (s *Store) LoadSeed(r io.Reader) error {
	var seed Seed
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return fmt.Errorf("failed to decode seed: %w", err)
	}

	for i, u := range seed.Users {
		role, err := user.NewRole(u.Role)
		if err != nil {
			return fmt.Errorf("seed user %d (%s): %w", i, u.ID, err)
		}
		active := u.Active == nil || *u.Active
		s.SeedUser(u.ID, role, active)
	}
	for i, p := range seed.Parcels {
		if p.ID == uuid.Nil || p.Reference == "" {
			return fmt.Errorf("seed parcel %d: id and reference are required", i)
		}
		s.SeedParcel(p.ID, p.Reference, p.OwnerID)
	}
	return nil
}

func (s *Store) LoadSeedFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return s.LoadSeed(f)
}
