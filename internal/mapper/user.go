// Package mapper translates between stored user records and their wire form.
package mapper

import (
	"userservice/internal/handler/dto"
	"userservice/internal/model"
)

// ToWire returns the wire representation of a stored user.
func ToWire(u model.User) dto.User {
	return dto.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}

// ToWireList maps every stored user, preserving order.
func ToWireList(users []model.User) []dto.User {
	out := make([]dto.User, 0, len(users))
	for _, u := range users {
		out = append(out, ToWire(u))
	}
	return out
}

// ToStored builds a draft record for insertion. ID and CreatedAt stay zero.
func ToStored(in dto.UserInput) model.User {
	var u model.User
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Age != nil {
		u.Age = *in.Age
	}
	return u
}

// MergeUpdate overwrites the fields present in in and leaves the rest alone.
func MergeUpdate(existing *model.User, in dto.UserInput) {
	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Email != nil {
		existing.Email = *in.Email
	}
	if in.Age != nil {
		existing.Age = *in.Age
	}
}
