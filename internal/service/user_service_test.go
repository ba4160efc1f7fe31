package service

import (
	"context"
	"testing"

	"repouso-data/internal/domain"
	"repouso-data/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var v *ErrValidation
	require.ErrorAs(t, err, &v)
	return v.Message
}

func TestUserService_CreateValidation(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUsersRepository(), zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		name    string
		input   UserInput
		message string
	}{
		{"missing name", UserInput{Email: "a@b.c", Password: "x", Role: domain.RoleAdmin}, "Nome do usuário é obrigatório"},
		{"missing email", UserInput{FullName: "Ana", Password: "x", Role: domain.RoleAdmin}, "E-mail inválido"},
		{"malformed email", UserInput{FullName: "Ana", Email: "sem-arroba", Password: "x", Role: domain.RoleAdmin}, "E-mail inválido"},
		{"unknown role", UserInput{FullName: "Ana", Email: "a@b.c", Password: "x", Role: "gerente"}, "Perfil de acesso inválido"},
		{"missing password", UserInput{FullName: "Ana", Email: "a@b.c", Role: domain.RoleAdmin}, "Senha é obrigatória"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, tc.input)
			assert.Equal(t, tc.message, validationMessage(t, err))
		})
	}
}

func TestUserService_CreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUsersRepository(), zap.NewNop())
	ctx := context.Background()

	input := UserInput{FullName: "Ana", Email: "ana@repouso.local", Password: "segredo", Role: domain.RoleCaregiver}
	_, err := svc.CreateUser(ctx, input)
	require.NoError(t, err)

	input.FullName = "Outra Ana"
	_, err = svc.CreateUser(ctx, input)
	assert.Equal(t, "Já existe um usuário com este e-mail", validationMessage(t, err))
}

func TestUserService_ViewsNeverExposeHash(t *testing.T) {
	repo := repository.NewMemoryUsersRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	id, err := svc.CreateUser(ctx, UserInput{
		FullName: "Ana", Email: "Ana@Repouso.Local", Password: "segredo", Role: domain.RoleCoordinator,
	})
	require.NoError(t, err)

	view, err := svc.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ana@repouso.local", view.Email, "email is stored lowercased")
	assert.Equal(t, domain.RoleCoordinator, view.Role)
}

func TestUserService_UpdateKeepsPasswordWhenEmpty(t *testing.T) {
	repo := repository.NewMemoryUsersRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	id, err := svc.CreateUser(ctx, UserInput{
		FullName: "Ana", Email: "ana@repouso.local", Password: "segredo", Role: domain.RoleCaregiver,
	})
	require.NoError(t, err)

	before, err := repo.GetUser(ctx, id)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateUser(ctx, id, UserInput{
		FullName: "Ana Souza", Email: "ana@repouso.local", Role: domain.RoleCoordinator,
	}))

	after, err := repo.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", after.FullName)
	assert.Equal(t, domain.RoleCoordinator, after.Role)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)

	// a new password replaces the hash
	require.NoError(t, svc.UpdateUser(ctx, id, UserInput{
		FullName: "Ana Souza", Email: "ana@repouso.local", Password: "nova-senha", Role: domain.RoleCoordinator,
	}))
	replaced, err := repo.GetUser(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, replaced.PasswordHash)
}
