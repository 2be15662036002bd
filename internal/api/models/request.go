package models

// IssueTokenRequest represents the identity payload posted at login. The
// payload is trusted as-is: identity is established by the client-side auth
// provider before this endpoint is called.
type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email" example:"a@x.com"`
	Name  string `json:"name,omitempty" example:"Alice Doe"`
}

// UpsertUserRequest represents the user record saved on first login
type UpsertUserRequest struct {
	Email       string `json:"email" binding:"required,email" example:"a@x.com"`
	Name        string `json:"name,omitempty" example:"Alice Doe"`
	PhotoURL    string `json:"photoURL,omitempty" example:"https://example.com/a.png"`
	Role        string `json:"role,omitempty" binding:"omitempty,oneof=admin HR Employee" example:"Employee"`
	Designation string `json:"designation,omitempty" example:"Sales Assistant"`
	BankAccount string `json:"bank_account_no,omitempty" example:"0123456789"`
	Salary      int64  `json:"salary,omitempty" example:"25000"`
}

// UpdateUserRequest represents an admin update to a user record
type UpdateUserRequest struct {
	Role        string `json:"role,omitempty" binding:"omitempty,oneof=admin HR Employee" example:"HR"`
	Designation string `json:"designation,omitempty"`
	Salary      int64  `json:"salary,omitempty"`
}

// CreateServiceRequest represents a new service listing
type CreateServiceRequest struct {
	Title       string `json:"title" binding:"required" example:"Payroll Management"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Price       int64  `json:"price,omitempty" example:"199"`
	Category    string `json:"category,omitempty"`
}

// WorkEntryRequest represents a work log submission
type WorkEntryRequest struct {
	Task  string  `json:"task" binding:"required" example:"Sales"`
	Hours float64 `json:"hours" binding:"required,gt=0" example:"8"`
	Date  int64   `json:"date" binding:"required" example:"1640995200"`
	Month string  `json:"month,omitempty" example:"January"`
}

// PaymentIntentRequest represents an HR payment intent creation request.
// Amount is in the smallest currency unit.
type PaymentIntentRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0" example:"250000"`
	Currency string `json:"currency,omitempty" example:"usd"`
	Email    string `json:"email,omitempty" binding:"omitempty,email" example:"a@x.com"`
}

// ContactRequest represents a contact-form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required" example:"Alice Doe"`
	Email   string `json:"email" binding:"required,email" example:"a@x.com"`
	Message string `json:"message" binding:"required" example:"Hello!"`
}
