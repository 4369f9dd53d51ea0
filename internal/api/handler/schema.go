package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username             string `json:"username"              validate:"required,min=3"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// registerResponse echoes the public fields of the new account.
type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// loginResponse is the only token material ever sent to a client: no scopes,
// no user id.
type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- Catalog ---

type productRequest struct {
	Name         string  `json:"name"         validate:"required"`
	Price        float64 `json:"price"        validate:"required,gte=0"`
	Quantity     int     `json:"quantity"     validate:"gte=0"`
	Configurable bool    `json:"configurable"`
	IsActive     bool    `json:"is_active"`
}

type categoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Slug     string `json:"slug" validate:"required,min=2"`
	IsActive bool   `json:"is_active"`
}

// --- Reviews ---

type submitReviewRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating"  validate:"required,gte=1,lte=5"`
}

type moderateReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// --- Cart ---

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gte=1"`
}

// --- Pagination ---

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listResponse[T any] struct {
	Data       []T                `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toListResponse[T any](result *ports.ListResult[T]) listResponse[T] {
	items := result.Items
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	}
}

// pageFromQuery reads ?page= and ?limit=; the service clamps out-of-range
// values, so parse failures just fall back to zero.
func pageFromQuery(c echo.Context) ports.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.Page{Page: page, Limit: limit}
}
