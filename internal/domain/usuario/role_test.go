package usuario

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("")
	require.NoError(t, err)
	require.Equal(t, RoleFuncionario, r)

	r, err = ParseRole("admin")
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, r)

	_, err = ParseRole("GERENTE")
	require.True(t, httperr.IsBusiness(err, "invalid_role"))
}
