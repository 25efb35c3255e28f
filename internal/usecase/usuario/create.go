package usuario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/ponto-eletronico/internal/domain"
	domainUsuario "github.com/BruksfildServices01/ponto-eletronico/internal/domain/usuario"
	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
	"github.com/BruksfildServices01/ponto-eletronico/internal/validators"
)

type CreateUsuarioInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,papel"`
}

// bcrypt só considera os primeiros 72 bytes da senha.
const MaxPasswordBytes = 72

type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type CreateUsuario struct {
	repo     domainUsuario.Repository
	validate *validator.Validate
	cache    Invalidator
	hash     func(password string) ([]byte, error)
}

var errPasswordTooLong = httperr.ErrValidation(
	"invalid_password",
	"Senha deve ter no máximo 72 bytes.",
)

func NewCreateUsuario(
	repo domainUsuario.Repository,
	validate *validator.Validate,
	cache Invalidator,
) *CreateUsuario {
	return &CreateUsuario{
		repo:     repo,
		validate: validate,
		cache:    cache,
		hash: func(password string) ([]byte, error) {
			return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		},
	}
}

func (uc *CreateUsuario) Execute(
	ctx context.Context,
	in CreateUsuarioInput,
) (*models.User, error) {

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := validators.Check(
		uc.validate, in,
		"invalid_request", "Nome, email e senha são obrigatórios.",
	); err != nil {
		return nil, err
	}

	role, err := domainUsuario.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	if len(in.Password) > MaxPasswordBytes {
		return nil, errPasswordTooLong
	}

	hashed, err := uc.hash(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, errPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Role:         string(role),
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, httperr.ErrConflict(
				"email_already_exists",
				"Erro ao criar usuário (Email já existe?)",
			)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			slog.WarnContext(ctx, "stats cache invalidation failed", "error", err)
		}
	}

	return user, nil
}
