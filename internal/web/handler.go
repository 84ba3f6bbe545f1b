package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/martijn/userhub/internal/api/dto"
	"github.com/martijn/userhub/internal/core/repository"
	"github.com/martijn/userhub/internal/core/service"
)

type Handler struct {
	userService *service.UserService
	pageSize    int
}

func NewHandler(userService *service.UserService, pageSize int) *Handler {
	return &Handler{
		userService: userService,
		pageSize:    pageSize,
	}
}

// Index handles GET / with optional page and search query parameters. Users
// are listed newest first, one fixed-size page at a time.
func (h *Handler) Index(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	search := c.Query("search")

	filter := repository.UserFilter{
		Search:  search,
		Page:    page,
		PerPage: h.pageSize,
	}

	users, err := h.userService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load users")
		return
	}

	total, err := h.userService.CountUsers(c.Request.Context(), filter)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load users")
		return
	}

	totalPages := (total + h.pageSize - 1) / h.pageSize

	items := make([]dto.UserResponse, len(users))
	for i, user := range users {
		items[i] = dto.NewUserResponse(user)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Users":      items,
		"Page":       page,
		"TotalPages": totalPages,
		"HasPrev":    page > 1,
		"HasNext":    page < totalPages,
		"Search":     search,
		"Flashes":    takeFlashes(c),
	})
}

// AddUser handles POST /user/add
func (h *Handler) AddUser(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	phone := formPhone(c)

	_, err := h.userService.CreateUser(c.Request.Context(), service.CreateUserInput{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
	})

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		addFlash(c, "danger", "Name, email and password are required!")
	case errors.Is(err, repository.ErrEmailTaken):
		addFlash(c, "warning", "This email is already registered.")
	case err != nil:
		addFlash(c, "danger", "Failed to create user.")
	default:
		addFlash(c, "success", fmt.Sprintf("User %s created successfully!", name))
	}

	c.Redirect(http.StatusFound, "/")
}

// UpdateUser handles POST /user/update/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	name := c.PostForm("name")
	email := c.PostForm("email")
	phone := formPhone(c)

	input := service.UpdateUserInput{
		Name:  &name,
		Email: &email,
		Phone: phone,
	}
	// An empty password keeps the stored digest
	if password := c.PostForm("password"); password != "" {
		input.Password = &password
	}

	_, err := h.userService.UpdateUser(c.Request.Context(), id, input)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.AbortWithStatus(http.StatusNotFound)
		return
	case err != nil:
		// Duplicate email is by far the most likely cause
		addFlash(c, "danger", "Failed to update. Check whether the email already exists.")
	default:
		addFlash(c, "info", "User updated successfully!")
	}

	c.Redirect(http.StatusFound, "/")
}

// DeleteUser handles GET /user/delete/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	err := h.userService.DeleteUser(c.Request.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.AbortWithStatus(http.StatusNotFound)
		return
	case err != nil:
		addFlash(c, "danger", "Failed to delete user.")
	default:
		addFlash(c, "dark", "User removed successfully.")
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func formPhone(c *gin.Context) *string {
	if phone := c.PostForm("phone"); phone != "" {
		return &phone
	}
	return nil
}
