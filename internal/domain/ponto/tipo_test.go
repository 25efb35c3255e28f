package ponto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
)

func TestParseTipo(t *testing.T) {
	for _, tipo := range Tipos() {
		got, err := ParseTipo(string(tipo))
		require.NoError(t, err)
		require.Equal(t, tipo, got)
	}

	got, err := ParseTipo(" entrada ")
	require.NoError(t, err)
	require.Equal(t, TipoEntrada, got)

	_, err = ParseTipo("CAFE")
	require.True(t, httperr.IsBusiness(err, "invalid_type"))

	_, err = ParseTipo("")
	require.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestTipoLabel(t *testing.T) {
	require.Equal(t, "ENTRADA", TipoEntrada.Label())
	require.Equal(t, "SAIDA ALMOCO", TipoSaidaAlmoco.Label())
	require.Equal(t, "VOLTA ALMOCO", TipoVoltaAlmoco.Label())
}
