// internal/dto/user.go
package dto

// UserDTO is the identity projection exposed on Venta. Only the ID is
// guaranteed to be populated when nested in another DTO.
type UserDTO struct {
	ID    *int64  `json:"id,omitempty"`
	Login *string `json:"login,omitempty"`
}

// AdminUserDTO is the account projection served on the administration
// surface. The password hash never leaves the model.
type AdminUserDTO struct {
	ID          *int64   `json:"id,omitempty"`
	Login       *string  `json:"login"`
	Email       *string  `json:"email"`
	FirstName   *string  `json:"firstName,omitempty"`
	LastName    *string  `json:"lastName,omitempty"`
	Activated   bool     `json:"activated"`
	Authorities []string `json:"authorities"`
}
