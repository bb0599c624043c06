package models

// Service mirrors the services table.
type Service struct {
	ServiceID   string
	CustomerID  string
	ServiceName string
	Description string
	IsActive    bool
	AuditFields
}
