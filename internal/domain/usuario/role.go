package usuario

import (
	"strings"

	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
)

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleFuncionario Role = "FUNCIONARIO"
)

func DefaultRole() Role {
	return RoleFuncionario
}

// ParseRole aceita vazio como o papel padrão.
func ParseRole(s string) (Role, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultRole(), nil
	}

	switch r := Role(s); r {
	case RoleAdmin, RoleFuncionario:
		return r, nil
	}
	return "", httperr.ErrValidation("invalid_role", "Papel inválido.")
}
