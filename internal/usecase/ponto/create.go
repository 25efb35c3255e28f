package ponto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/ponto-eletronico/internal/domain"
	domainPonto "github.com/BruksfildServices01/ponto-eletronico/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
	"github.com/BruksfildServices01/ponto-eletronico/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePontoInput struct {
	UserID uint   `json:"userId" validate:"required"`
	Type   string `json:"type" validate:"required,tipo_ponto"`
}

// ======================================================
// USE CASE
// ======================================================

type CreatePonto struct {
	repo     domainPonto.Repository
	validate *validator.Validate
	cache    Invalidator
	now      func() time.Time
}

func NewCreatePonto(
	repo domainPonto.Repository,
	validate *validator.Validate,
	cache Invalidator,
) *CreatePonto {
	return &CreatePonto{
		repo:     repo,
		validate: validate,
		cache:    orNoop(cache),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePonto) Execute(
	ctx context.Context,
	in CreatePontoInput,
) (*models.Ponto, error) {

	if err := validators.Check(
		uc.validate, in,
		"missing_fields", "UserId e Type são obrigatórios",
	); err != nil {
		return nil, err
	}

	tipo, err := domainPonto.ParseTipo(in.Type)
	if err != nil {
		return nil, err
	}

	p := &models.Ponto{
		UserID:    in.UserID,
		Type:      string(tipo),
		Timestamp: uc.now(),
	}

	// a existência do usuário fica a cargo da FK
	if err := uc.repo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return nil, httperr.ErrValidation("user_not_found", "Usuário não encontrado.")
		}
		return nil, fmt.Errorf("create ponto: %w", err)
	}

	invalidate(ctx, uc.cache)

	created, err := uc.repo.FindByID(ctx, p.ID)
	if err != nil {
		slog.WarnContext(ctx, "reload created ponto failed", "id", p.ID, "error", err)
		return p, nil
	}
	p.User = created.User

	return p, nil
}
