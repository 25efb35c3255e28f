package ponto

import (
	"strings"

	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
)

// ===============================
// Tipo de batida
// ===============================

type Tipo string

const (
	TipoEntrada     Tipo = "ENTRADA"
	TipoSaidaAlmoco Tipo = "SAIDA_ALMOCO"
	TipoVoltaAlmoco Tipo = "VOLTA_ALMOCO"
	TipoSaida       Tipo = "SAIDA"
)

func Tipos() []Tipo {
	return []Tipo{TipoEntrada, TipoSaidaAlmoco, TipoVoltaAlmoco, TipoSaida}
}

func (t Tipo) Valid() bool {
	switch t {
	case TipoEntrada, TipoSaidaAlmoco, TipoVoltaAlmoco, TipoSaida:
		return true
	}
	return false
}

// Label é o texto exibido em relatórios: "SAIDA_ALMOCO" vira "SAIDA ALMOCO".
func (t Tipo) Label() string {
	return strings.Replace(string(t), "_", " ", 1)
}

func ParseTipo(s string) (Tipo, error) {
	t := Tipo(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", httperr.ErrValidation("invalid_type", "Tipo de registro inválido.")
	}
	return t, nil
}
