package models

import "time"

// User roles. Every account starts as a Client; Admin is assigned
// manually or by the seed routine.
const (
	RoleClient = "Client"
	RoleAdmin  = "Admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `gorm:"not null" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"type:VARCHAR(20);not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	Orders       []Order   `gorm:"foreignKey:UserID" json:"-"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
