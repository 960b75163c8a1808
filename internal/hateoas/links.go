// Package hateoas builds HAL-style navigation links for user representations.
package hateoas

import (
	"strconv"
	"strings"

	"userservice/internal/handler/dto"
)

// Link relations attached to user representations.
const (
	RelSelf       = "self"
	RelCollection = "collection"
	RelUpdate     = "update"
	RelDelete     = "delete"
	RelCreate     = "create"
)

// Link is a single HAL link object.
type Link struct {
	Href string `json:"href" example:"/api/users/1"`
}

// Links maps a relation name to its link.
type Links map[string]Link

// UserResource is a user representation with its links.
type UserResource struct {
	dto.User
	Links Links `json:"_links"`
}

// UserCollection is the list representation returned by GET /api/users.
type UserCollection struct {
	Embedded EmbeddedUsers `json:"_embedded"`
	Links    Links         `json:"_links"`
}

// EmbeddedUsers holds the embedded user resources of a collection.
type EmbeddedUsers struct {
	Users []UserResource `json:"users"`
}

// UserHref returns the canonical location of a single user under base.
func UserHref(base string, id uint) string {
	return strings.TrimRight(base, "/") + "/" + strconv.FormatUint(uint64(id), 10)
}

// UserLinks returns the fixed link set for a single user.
func UserLinks(base string, id uint) Links {
	self := UserHref(base, id)
	return Links{
		RelSelf:       {Href: self},
		RelCollection: {Href: strings.TrimRight(base, "/")},
		RelUpdate:     {Href: self},
		RelDelete:     {Href: self},
	}
}

// CollectionLinks returns the links attached to the user collection.
func CollectionLinks(base string) Links {
	collection := strings.TrimRight(base, "/")
	return Links{
		RelSelf:   {Href: collection},
		RelCreate: {Href: collection},
	}
}

// NewUserResource wraps u with its links.
func NewUserResource(base string, u dto.User) UserResource {
	return UserResource{User: u, Links: UserLinks(base, u.ID)}
}

// NewUserCollection wraps users with per-item and collection links.
// The embedded slice is never nil, so an empty store encodes as [].
func NewUserCollection(base string, users []dto.User) UserCollection {
	items := make([]UserResource, 0, len(users))
	for _, u := range users {
		items = append(items, NewUserResource(base, u))
	}
	return UserCollection{
		Embedded: EmbeddedUsers{Users: items},
		Links:    CollectionLinks(base),
	}
}
