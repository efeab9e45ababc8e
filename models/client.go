package models

import "time"

// Client is an end customer of a tenant business (the person booking
// appointments or placing orders, not an authenticated account).
type Client struct {
	ID        string    `bson:"id" json:"id"`
	TenantID  string    `bson:"tenantId" json:"tenantId"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
