package domain

// Customer represents a billable customer owning zero or more services.
// Customers are created by upstream provisioning; this service only reads them.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Names      string `json:"names"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	AuditFields
}
