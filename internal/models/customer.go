package models

import "time"

// Customer mirrors the customers table.
type Customer struct {
	CustomerID string
	Names      string
	Lastname   string
	Email      string
	AuditFields
}

// AuditFields holds the audit columns shared by provisioned tables.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
