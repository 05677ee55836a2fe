package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artemaweirro/library-api/internal/core/domain"
	"github.com/artemaweirro/library-api/internal/core/ports"
)

// BookHandler handles HTTP requests for the book catalog. Reads are public;
// writes are mounted behind the MODERATOR/ADMIN route rule.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books.
//
// @Summary      List all books
// @Tags         books
// @Produce      json
// @Success      200  {array}  bookResponse
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponses(books))
}

// Get handles GET /books/:id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  bookResponse
// @Failure      404  {object}  errorResponse
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(*book))
}

// SearchByTitle handles GET /books/by-title?title=...
//
// @Summary      Find books by title substring
// @Tags         books
// @Produce      json
// @Param        title  query     string  true  "Title substring, case-insensitive"
// @Success      200    {array}   bookResponse
// @Failure      404    {object}  errorResponse
// @Router       /books/by-title [get]
func (h *BookHandler) SearchByTitle(c echo.Context) error {
	books, err := h.service.SearchByTitle(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		return err
	}
	if len(books) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Книг с данным названием не найдено")
	}
	return c.JSON(http.StatusOK, toBookResponses(books))
}

// Create handles POST /books.
//
// @Summary      Add a new book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookRequest  true  "Book details"
// @Success      201   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.service.Create(c.Request().Context(), ports.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBookResponse(*book))
}

// Replace handles PUT /books/:id.
//
// @Summary      Fully replace a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Book id"
// @Param        body  body      bookRequest  true  "Book details"
// @Success      200   {object}  bookResponse
// @Failure      404   {object}  errorResponse
// @Router       /books/{id} [put]
func (h *BookHandler) Replace(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.service.Replace(c.Request().Context(), c.Param("id"), ports.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(*book))
}

// Patch handles PATCH /books/:id.
//
// @Summary      Partially update a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Book id"
// @Param        body  body      bookPatchRequest  true  "Fields to update"
// @Success      200   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /books/{id} [patch]
func (h *BookHandler) Patch(c echo.Context) error {
	var req bookPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
	}

	book, err := h.service.Patch(c.Request().Context(), c.Param("id"), domain.BookPatch{
		Title:       req.Title,
		Author:      req.Author,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(*book))
}

// Delete handles DELETE /books/:id.
//
// @Summary      Delete a book
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Book id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
