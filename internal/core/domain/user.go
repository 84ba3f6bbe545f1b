package domain

import "time"

type User struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	PasswordDigest string    `db:"password_digest"` // bcrypt hashed
	Phone          *string   `db:"phone"`
	CreatedAt      time.Time `db:"created_at"`
}

func NewUser(name, email, passwordDigest string, phone *string) *User {
	return &User{
		Name:           name,
		Email:          email,
		PasswordDigest: passwordDigest,
		Phone:          phone,
		CreatedAt:      time.Now().UTC(),
	}
}

// UserUpdate describes a partial update. A nil field keeps the stored value.
type UserUpdate struct {
	Name           *string
	Email          *string
	PasswordDigest *string
	Phone          *string
}
