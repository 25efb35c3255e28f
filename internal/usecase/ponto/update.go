package ponto

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/ponto-eletronico/internal/domain"
	domainPonto "github.com/BruksfildServices01/ponto-eletronico/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
	"github.com/BruksfildServices01/ponto-eletronico/internal/validators"
)

type UpdatePontoInput struct {
	Type string `json:"type" validate:"required,tipo_ponto"`
}

// UpdatePonto corrige o tipo de uma batida. O horário não muda.
type UpdatePonto struct {
	repo     domainPonto.Repository
	validate *validator.Validate
	cache    Invalidator
}

func NewUpdatePonto(
	repo domainPonto.Repository,
	validate *validator.Validate,
	cache Invalidator,
) *UpdatePonto {
	return &UpdatePonto{
		repo:     repo,
		validate: validate,
		cache:    orNoop(cache),
	}
}

func (uc *UpdatePonto) Execute(
	ctx context.Context,
	id uint,
	in UpdatePontoInput,
) (*models.Ponto, error) {

	if err := validators.Check(
		uc.validate, in,
		"missing_fields", "Type é obrigatório",
	); err != nil {
		return nil, err
	}

	tipo, err := domainPonto.ParseTipo(in.Type)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "find ponto")
	}

	if err := uc.repo.UpdateType(ctx, id, tipo); err != nil {
		return nil, fmt.Errorf("update ponto: %w", err)
	}

	invalidate(ctx, uc.cache)

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "reload ponto")
	}
	return p, nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrNotFound("ponto_not_found", "Registro não encontrado.")
	}
	return fmt.Errorf("%s: %w", op, err)
}
