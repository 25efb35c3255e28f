package usuario

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
	"github.com/BruksfildServices01/ponto-eletronico/internal/infra/repository"
	"github.com/BruksfildServices01/ponto-eletronico/internal/testutil"
	"github.com/BruksfildServices01/ponto-eletronico/internal/validators"
)

func TestCreateUsuario(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUsuarioGormRepository(testutil.NewDB(t))
	uc := NewCreateUsuario(repo, validators.New(), nil)
	uc.hash = func(p string) ([]byte, error) {
		return bcrypt.GenerateFromPassword([]byte(p), bcrypt.MinCost)
	}

	t.Run("role defaults to FUNCIONARIO", func(t *testing.T) {
		u, err := uc.Execute(ctx, CreateUsuarioInput{Name: "Ana", Email: "ana@x.com", Password: "p"})
		require.NoError(t, err)
		require.NotZero(t, u.ID)
		require.Equal(t, "FUNCIONARIO", u.Role)
		require.NotEqual(t, "p", u.PasswordHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("p")))
	})

	t.Run("explicit role and normalized email", func(t *testing.T) {
		u, err := uc.Execute(ctx, CreateUsuarioInput{Name: " Bia ", Email: " BIA@X.com ", Password: "p", Role: "ADMIN"})
		require.NoError(t, err)
		require.Equal(t, "ADMIN", u.Role)
		require.Equal(t, "bia@x.com", u.Email)
		require.Equal(t, "Bia", u.Name)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateUsuarioInput{Name: "Ana 2", Email: "ana@x.com", Password: "p"})
		require.True(t, httperr.IsKind(err, httperr.KindConflict))
		require.True(t, httperr.IsBusiness(err, "email_already_exists"))
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateUsuarioInput{Email: "c@x.com", Password: "p"})
		require.True(t, httperr.IsBusiness(err, "invalid_request"))

		_, err = uc.Execute(ctx, CreateUsuarioInput{Name: "C", Email: "c-at-x", Password: "p"})
		require.True(t, httperr.IsBusiness(err, "invalid_email"))

		_, err = uc.Execute(ctx, CreateUsuarioInput{Name: "C", Email: "c@x.com", Password: "p", Role: "DONO"})
		require.True(t, httperr.IsBusiness(err, "invalid_role"))
	})

	t.Run("password over 72 bytes", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateUsuarioInput{Name: "C", Email: "c@x.com", Password: strings.Repeat("a", 73)})
		require.True(t, httperr.IsKind(err, httperr.KindValidation))
		require.True(t, httperr.IsBusiness(err, "invalid_password"))

		_, err = uc.Execute(ctx, CreateUsuarioInput{Name: "C", Email: "c72@x.com", Password: strings.Repeat("a", 72)})
		require.NoError(t, err)

		// "ç" ocupa 2 bytes
		_, err = uc.Execute(ctx, CreateUsuarioInput{Name: "C", Email: "c@x.com", Password: strings.Repeat("ç", 37)})
		require.True(t, httperr.IsBusiness(err, "invalid_password"))
	})

	users, err := NewListUsuarios(repo).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "Ana", users[0].Name)
}
