package domain

import (
	"strings"
	"time"

	"github.com/light-bringer/catalog-service/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldCategory = "category"
	FieldName     = "name"
)

// Product is the aggregate root for the catalog.
// Fields are unexported so every mutation goes through ApplyUpdate,
// keeping updates field-scoped and auditable.
type Product struct {
	id        string
	category  string
	name      string
	createdAt time.Time
	updatedAt time.Time

	// Clock for time operations (injected for testability)
	clock clock.Clock

	// Change tracking for partial repository updates
	changes *ChangeTracker
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(id, category, name string, now time.Time, clk clock.Clock) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	if strings.TrimSpace(category) == "" {
		return nil, ErrEmptyCategory
	}

	p := &Product{
		id:        id,
		category:  category,
		name:      name,
		createdAt: now,
		updatedAt: now,
		clock:     clk,
		changes:   NewChangeTracker(),
	}

	// Mark all fields as dirty for a new product
	p.changes.MarkDirty(FieldCategory)
	p.changes.MarkDirty(FieldName)

	return p, nil
}

// ReconstructProduct reconstitutes a Product from the database (for loading existing rows).
func ReconstructProduct(id, category, name string, createdAt, updatedAt time.Time, clk clock.Clock) *Product {
	return &Product{
		id:        id,
		category:  category,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
		clock:     clk,
		changes:   NewChangeTracker(), // Start with a clean slate
	}
}

// Getters
func (p *Product) ID() string              { return p.id }
func (p *Product) Category() string        { return p.category }
func (p *Product) Name() string            { return p.name }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker { return p.changes }

// ApplyUpdate replaces the supplied fields and leaves nil fields untouched.
// This is the only sanctioned mutation path for a persisted product.
func (p *Product) ApplyUpdate(category, name *string) error {
	if category != nil {
		if strings.TrimSpace(*category) == "" {
			return ErrEmptyCategory
		}
		p.category = *category
		p.changes.MarkDirty(FieldCategory)
	}

	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return ErrEmptyName
		}
		p.name = *name
		p.changes.MarkDirty(FieldName)
	}

	if p.changes.HasChanges() {
		p.updatedAt = p.clock.Now()
	}

	return nil
}
