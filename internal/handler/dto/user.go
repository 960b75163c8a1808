package dto

import "time"

// User is the wire representation returned to clients.
type User struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Ivan Sidorov"`
	Email     string    `json:"email" example:"ivan@mail.com"`
	Age       int       `json:"age" example:"25"`
	CreatedAt time.Time `json:"createdAt" example:"2025-01-01T12:00:00Z"`
}

// UserInput carries client-submitted user fields.
// A nil field means the client did not send it.
type UserInput struct {
	Name  *string
	Email *string
	Age   *int
}

// CreateUserRequest is the body of POST /api/users. Every field is required.
type CreateUserRequest struct {
	Name  *string `json:"name" validate:"required,notblank,min=2,max=50" example:"Ivan Sidorov"`
	Email *string `json:"email" validate:"required,notblank,email" example:"ivan@mail.com"`
	Age   *int    `json:"age" validate:"required,min=1,max=150" example:"25"`
}

// Input converts the request into mapper input.
func (r CreateUserRequest) Input() UserInput {
	return UserInput(r)
}

// UpdateUserRequest is the body of PUT /api/users/{id}.
// Absent fields keep their stored values; present ones obey the create rules.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,notblank,min=2,max=50" example:"Ivan Sidorov"`
	Email *string `json:"email,omitempty" validate:"omitempty,notblank,email" example:"ivan@mail.com"`
	Age   *int    `json:"age,omitempty" validate:"omitempty,min=1,max=150" example:"26"`
}

// Input converts the request into mapper input.
func (r UpdateUserRequest) Input() UserInput {
	return UserInput(r)
}
