package domain

// Service is a subscribed offering that belongs to exactly one customer and
// owns zero or more receipts ordered by due date.
type Service struct {
	ServiceID   string `json:"serviceID"` // Primary Key (UUID)
	CustomerID  string `json:"customerID"`
	ServiceName string `json:"serviceName"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
