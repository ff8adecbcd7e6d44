package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizePayloadRedactsClientData(t *testing.T) {
	payload := map[string]any{
		"cpf":       "12345678900",
		"name":      "Ana",
		"birthDate": "02-01-1990",
		"nested": []any{
			map[string]any{"address": "Rua A", "amount": "10"},
		},
	}

	got, ok := SanitizePayload(payload).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "******", got["cpf"])
	assert.Equal(t, "******", got["birthDate"])
	assert.Equal(t, "Ana", got["name"])

	nested := got["nested"].([]any)[0].(map[string]any)
	assert.Equal(t, "******", nested["address"])
	assert.Equal(t, "10", nested["amount"])
}

func TestErrorWritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Error("transaction failed", errors.New("boom"), Fields{"cpf": "1", "accountNumber": int64(3)})

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "******", fields["cpf"])
	assert.Equal(t, int64(3), fields["accountNumber"])
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init("loud"))
}
