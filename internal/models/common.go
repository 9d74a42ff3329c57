// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields. IDs are server-assigned sequence values;
// they are immutable once persisted.
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Authorities granted to application users.
const (
	AuthorityAdmin = "ROLE_ADMIN"
	AuthorityUser  = "ROLE_USER"
)
