package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/logging"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/usecase"
)

type userCreator interface {
	Execute(ctx context.Context, in usecase.CreateUserInput) (*entity.User, error)
}

type userFinder interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
}

type UserHandler struct {
	create userCreator
	users  userFinder
}

func NewUserHandler(create userCreator, users userFinder) *UserHandler {
	return &UserHandler{create: create, users: users}
}

type createUserReq struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	user, err := h.create.Execute(ctx, usecase.CreateUserInput{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	logging.From(c).Info("user created", "username", user.Username)
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) FindByUsername(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	user, err := h.users.FindByUsername(ctx, c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) FindByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	user, err := h.users.FindByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
