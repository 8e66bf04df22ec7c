package user

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleMerchant Role = "merchant"
)

type User struct {
	ID         uint      `json:"id"`
	FirstName  string    `json:"first_name"`
	MiddleName string    `json:"middle_name,omitempty"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

type RegisterParams struct {
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Password   string
	IsMerchant bool
}

type UpdateProfileParams struct {
	UserID     uint
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
}
