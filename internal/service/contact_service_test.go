package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutation/internal/model"
	"glutation/internal/repository"
)

func TestContactService_SubmitRequest(t *testing.T) {
	svc := NewContactService(repository.NewContactRepository())
	ctx := context.Background()

	first, err := svc.SubmitRequest(ctx, &model.ContactRequest{
		Name:    "Carlos Ruiz",
		Email:   "carlos.ruiz@example.com",
		Subject: "Información Adicional",
		Message: "Quisiera más detalles sobre los envíos.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := svc.SubmitRequest(ctx, &model.ContactRequest{
		Name:    "Ana Pérez",
		Email:   "ana.perez@example.com",
		Subject: "Consulta",
		Message: "Hola",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}
