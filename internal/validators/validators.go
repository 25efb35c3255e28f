package validators

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/ponto-eletronico/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-eletronico/internal/domain/usuario"
	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
)

const (
	TagTipoPonto = "tipo_ponto"
	TagPapel     = "papel"
)

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(TagTipoPonto, func(fl validator.FieldLevel) bool {
		_, err := ponto.ParseTipo(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation(TagPapel, func(fl validator.FieldLevel) bool {
		_, err := usuario.ParseRole(fl.Field().String())
		return err == nil
	})

	return v
}

// Check valida s e converte a primeira falha em erro de negócio.
// Tags conhecidas ganham código próprio; o resto usa code/message.
func Check(v *validator.Validate, s any, code, message string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fes validator.ValidationErrors
	if !errors.As(err, &fes) || len(fes) == 0 {
		return err
	}

	switch fes[0].Tag() {
	case "email":
		return httperr.ErrValidation("invalid_email", "Email inválido.")
	case TagTipoPonto:
		return httperr.ErrValidation("invalid_type", "Tipo de registro inválido.")
	case TagPapel:
		return httperr.ErrValidation("invalid_role", "Papel inválido.")
	}
	return httperr.ErrValidation(code, message)
}
