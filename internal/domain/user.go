package domain

import "time"

type User struct {
	ID        string
	Phone     string
	PinHash   string
	Role      string
	CreatedAt time.Time
}

// AuthUser is the authenticated caller identity injected by the auth
// middleware and consumed by the recharge usecase.
type AuthUser struct {
	ID    string
	Phone string
	Role  string
}

type UserRepository interface {
	CreateUser(user *User) (string, error)
	GetUserByID(userID string) (*User, error)
	GetUserByPhone(phone string) (*User, error)
}
