package cardlog

import (
	"context"
	"testing"

	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/shared/common/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWarnSuspiciousState(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx := logger.NewContext(context.Background(), zap.New(core))

	ok := model.NewCard(1, "4111111111111111", "12/2030", "VISA", "", decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.Zero)
	WarnSuspiciousState(ctx, ok)
	assert.Zero(t, logs.Len())

	odd := model.NewCard(1, "4111111111111111", "12/2030", "VISA", "BLOQUEADO", decimal.NewFromInt(10), decimal.NewFromInt(50), decimal.Zero)
	WarnSuspiciousState(ctx, odd)
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, "card stored with unknown status", logs.All()[0].Message)
	assert.Equal(t, "card available limit exceeds total limit", logs.All()[1].Message)
}
