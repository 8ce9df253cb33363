package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradsuite/cvdash/internal/adapters/driven/storage/memory"
	"github.com/gradsuite/cvdash/internal/core/services"
)

func TestNewPorts(t *testing.T) {
	svc := services.NewCVService(memory.NewCVStore())
	coord := services.NewDeletionCoordinator(svc, 0)

	ports := NewPorts(svc, coord)

	assert.Equal(t, svc, ports.CV)
	assert.Equal(t, coord, ports.Deleter)
	assert.Nil(t, ports.Changes)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	svc := services.NewCVService(memory.NewCVStore())
	coord := services.NewDeletionCoordinator(svc, 0)

	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrInvalidPorts)
	assert.ErrorIs(t, (&Ports{Deleter: coord}).Validate(), ErrMissingCVService)
	assert.ErrorIs(t, (&Ports{CV: svc}).Validate(), ErrMissingDeleter)
}
