// Package user stores storefront customers.
package user

import "context"

type User struct {
	ID    string  `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Email string  `json:"email" db:"email"`
	Phone *string `json:"phone,omitempty" db:"phone"`
}

type Store interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, u User) (User, error)
	Get(ctx context.Context, id string) (User, error)
	Count(ctx context.Context) (int, error)
}
