package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"CT-MUSICAL/internal/models"
)

func TestRecordServiceDisabled(t *testing.T) {
	svc := NewRecordService(nil)
	ctx := context.Background()

	assert.False(t, svc.Enabled())
	assert.ErrorIs(t, svc.Create(ctx, &models.ContractRecord{}), ErrDatabaseDisabled)

	_, err := svc.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrDatabaseDisabled)

	_, _, err = svc.List(ctx, "", 10, 0)
	assert.ErrorIs(t, err, ErrDatabaseDisabled)

	var nilSvc *RecordService
	assert.False(t, nilSvc.Enabled())
}
