package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
)

const minPasswordLen = 7

// Account-creation validation failures. These are caller errors: same input
// and store state always produce the same outcome, so nothing is retried.
var (
	ErrEmptyUsername    = errors.New("the user name can't be empty")
	ErrUsernameTaken    = errors.New("the user name is already used")
	ErrPasswordTooShort = errors.New("password must be at least 7 characters long")
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
)

// IsValidation reports whether err is a caller-facing validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyUsername) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrInvalidQuantity)
}

type CreateUserInput struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// CreateUser validates the input and stores a new account with an empty cart.
// The password is hashed before anything is written; no record is created on
// a validation failure.
type CreateUser struct {
	users  UserRepo
	hasher PasswordHasher
}

func NewCreateUser(users UserRepo, hasher PasswordHasher) *CreateUser {
	return &CreateUser{users: users, hasher: hasher}
}

func (uc *CreateUser) Execute(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	if in.Username == "" {
		return nil, ErrEmptyUsername
	}

	switch _, err := uc.users.FindByUsername(ctx, in.Username); {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, ErrUserNotFound):
		return nil, fmt.Errorf("find user: %w", err)
	}

	if len(in.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{Username: in.Username, PasswordHash: hash}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
