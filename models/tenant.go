package models

import "time"

// Tenant is one isolated business unit. All business documents carry the
// tenant's ID and every repository query is scoped by it.
type Tenant struct {
	ID        string    `bson:"id" json:"id"`
	Slug      string    `bson:"slug" json:"slug"` // URL-safe unique handle, e.g. "barbearia-central"
	Name      string    `bson:"name" json:"name"`
	Segment   string    `bson:"segment,omitempty" json:"segment,omitempty"` // e.g. "barbershop", "clinic", "store"
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
