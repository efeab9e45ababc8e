package models

import "time"

// ServiceOffering is a bookable service of a tenant (haircut, consultation,
// delivery); its duration drives the appointment end-time computation.
type ServiceOffering struct {
	ID          string    `bson:"id" json:"id"`
	TenantID    string    `bson:"tenantId" json:"tenantId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMin int       `bson:"durationMin" json:"durationMin"`
	Price       float64   `bson:"price" json:"price"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Product is a sellable stocked item of a tenant's e-commerce surface.
type Product struct {
	ID          string    `bson:"id" json:"id"`
	TenantID    string    `bson:"tenantId" json:"tenantId"`
	SKU         string    `bson:"sku" json:"sku"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Stock       int       `bson:"stock" json:"stock"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
