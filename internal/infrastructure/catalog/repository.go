package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/duvetfinder/backend/internal/domain"
)

// Repository serves the duvet catalog from a JSON file loaded once at
// startup. It is read-only after construction; All hands out a fresh slice so
// callers cannot reorder the shared catalog.
type Repository struct {
	duvets []domain.Duvet
	index  map[string]int
}

// NewRepository loads and validates the catalog file at path.
func NewRepository(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	repo, err := NewRepositoryFromJSON(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[CATALOG] Loaded %d duvets from %s", repo.Size(), path)
	return repo, nil
}

// NewRepositoryFromJSON builds a repository from raw catalog JSON. Every item
// must carry at least one variant and every variant a known insulation level;
// violations reject the whole catalog rather than surfacing later as
// undefined selector behavior.
func NewRepositoryFromJSON(data []byte) (*Repository, error) {
	var duvets []domain.Duvet
	if err := json.Unmarshal(data, &duvets); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	index := make(map[string]int, len(duvets))
	for i, d := range duvets {
		if err := validateDuvet(d); err != nil {
			return nil, fmt.Errorf("%w: item %d (%s): %v", domain.ErrInvalidCatalog, i, d.ID, err)
		}
		if _, exists := index[d.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate duvet ID %s", domain.ErrInvalidCatalog, d.ID)
		}
		index[d.ID] = i
	}

	return &Repository{duvets: duvets, index: index}, nil
}

func validateDuvet(d domain.Duvet) error {
	if d.ID == "" {
		return fmt.Errorf("missing ID")
	}
	if len(d.Variants) == 0 {
		return fmt.Errorf("empty variant list")
	}
	for _, v := range d.Variants {
		switch v.Insulation {
		case domain.InsulationCool, domain.InsulationWarm, domain.InsulationExtraWarm:
		default:
			return fmt.Errorf("variant %s: unknown insulation %q", v.ID, v.Insulation)
		}
	}
	return nil
}

// All returns the catalog in its original order.
func (r *Repository) All(ctx context.Context) ([]domain.Duvet, error) {
	out := make([]domain.Duvet, len(r.duvets))
	copy(out, r.duvets)
	return out, nil
}

// Get returns the catalog item with the given ID.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Duvet, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrDuvetNotFound
	}
	d := r.duvets[i]
	return &d, nil
}

// Size returns the number of catalog items.
func (r *Repository) Size() int {
	return len(r.duvets)
}
