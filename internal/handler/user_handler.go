package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"userservice/internal/errors"
	"userservice/internal/handler/dto"
	"userservice/internal/hateoas"
	"userservice/internal/service"
)

// UsersPath is the collection path relative to the server root.
const UsersPath = "/api/users"

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	svc  service.UserService
	base string
}

// NewUserHandler creates a handler layer.
// publicBaseURL prefixes hypermedia links; pass "" for relative links.
func NewUserHandler(svc service.UserService, publicBaseURL string) *UserHandler {
	return &UserHandler{
		svc:  svc,
		base: strings.TrimRight(publicBaseURL, "/") + UsersPath,
	}
}

// ListUsers godoc
// @Summary List users
// @Description Retrieve a list of all users
// @Tags users
// @Produce json
// @Success 200 {object} hateoas.UserCollection
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, hateoas.NewUserCollection(h.base, users))
}

// GetUser godoc
// @Summary Get user by id
// @Description Retrieve a specific user by their ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} hateoas.UserResource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, hateoas.NewUserResource(h.base, *user))
}

// CreateUser godoc
// @Summary Create user
// @Description Create a new user; id and createdAt are assigned by the server
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User payload"
// @Success 201 {object} hateoas.UserResource
// @Header 201 {string} Location "URL of the created user"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return respondError(err)
	}

	created, err := h.svc.CreateUser(c.Request().Context(), req.Input())
	if err != nil {
		return respondError(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, hateoas.UserHref(h.base, created.ID))
	return c.JSON(http.StatusCreated, hateoas.NewUserResource(h.base, *created))
}

// UpdateUser godoc
// @Summary Update user
// @Description Update an existing user; only fields present in the body are changed
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} hateoas.UserResource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return respondError(err)
	}

	updated, err := h.svc.UpdateUser(c.Request().Context(), id, req.Input())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, hateoas.NewUserResource(h.base, *updated))
}

// DeleteUser godoc
// @Summary Delete user
// @Description Delete a user by their ID
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

// respondError converts a domain error into an echo.HTTPError.
// The underlying error is kept as Internal so the request logger can record it.
func respondError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}
