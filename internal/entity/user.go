package entity

import "time"

type UserRole string

const (
	RoleHead   UserRole = "head"
	RoleMember UserRole = "member"
)

func IsValidRole(role string) bool {
	switch UserRole(role) {
	case RoleHead, RoleMember:
		return true
	default:
		return false
	}
}

type User struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	FamilyID  string    `db:"family_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
