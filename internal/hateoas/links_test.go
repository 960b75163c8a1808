package hateoas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userservice/internal/handler/dto"
)

func TestUserLinks(t *testing.T) {
	links := UserLinks("/api/users", 1)

	assert.Equal(t, Links{
		"self":       {Href: "/api/users/1"},
		"collection": {Href: "/api/users"},
		"update":     {Href: "/api/users/1"},
		"delete":     {Href: "/api/users/1"},
	}, links)
}

func TestUserLinks_AbsoluteBaseWithTrailingSlash(t *testing.T) {
	links := UserLinks("https://users.example.com/api/users/", 12)

	assert.Equal(t, "https://users.example.com/api/users/12", links[RelSelf].Href)
	assert.Equal(t, "https://users.example.com/api/users", links[RelCollection].Href)
}

func TestNewUserResource_FlattensUserFields(t *testing.T) {
	res := NewUserResource("/api/users", dto.User{
		ID:        1,
		Name:      "Ivan Sidorov",
		Email:     "ivan@mail.com",
		Age:       25,
		CreatedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	})

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Ivan Sidorov", body["name"])
	assert.Equal(t, "2025-01-01T12:00:00Z", body["createdAt"])
	assert.Contains(t, body, "_links")
}

func TestNewUserCollection_EmptyEncodesAsArray(t *testing.T) {
	raw, err := json.Marshal(NewUserCollection("/api/users", nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"_embedded": {"users": []},
		"_links": {"self": {"href": "/api/users"}, "create": {"href": "/api/users"}}
	}`, string(raw))
}
