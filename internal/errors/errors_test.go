package errors_test

import (
	"errors"
	"fmt"
	"testing"

	dnderr "github.com/KirkDiggler/dungeon-melee/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_KeepsCodeAndMeta(t *testing.T) {
	base := dnderr.NotFoundf("no lore for race %s", "kobold").WithMeta("race_id", "kobold")
	wrapped := dnderr.Wrapf(base, "recording %s", "BITE")

	require.NotNil(t, wrapped)
	assert.Equal(t, "recording BITE: no lore for race kobold", wrapped.Error())
	assert.True(t, dnderr.IsNotFound(wrapped))
	assert.Equal(t, map[string]any{"race_id": "kobold"}, dnderr.GetMeta(wrapped))
	assert.ErrorIs(t, wrapped, base)

	// Metadata is copied, not shared
	wrapped.WithMeta("method", "BITE")
	assert.Len(t, base.Meta, 1)
}

func TestWrap_Uncoded(t *testing.T) {
	cause := errors.New("connection refused")

	assert.Nil(t, dnderr.Wrap(nil, "ignored"))
	assert.Nil(t, dnderr.Wrapf(nil, "ignored %d", 1))
	assert.Nil(t, dnderr.WrapWithCode(nil, dnderr.CodeUnavailable, "ignored"))

	wrapped := dnderr.Wrap(cause, "failed to get lore")
	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.Nil(t, dnderr.GetMeta(wrapped))

	coded := dnderr.WrapWithCode(cause, dnderr.CodeUnavailable, "failed to get lore")
	assert.True(t, dnderr.IsUnavailable(coded))
	assert.False(t, dnderr.IsCorrupt(coded))
	assert.ErrorIs(t, coded, cause)
}

func TestCodes(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		code  dnderr.Code
		check func(error) bool
	}{
		{name: "not found", err: dnderr.NotFound("gone"), code: dnderr.CodeNotFound, check: dnderr.IsNotFound},
		{name: "invalid argument", err: dnderr.InvalidArgumentf("bad %s", "dice"), code: dnderr.CodeInvalidArgument, check: dnderr.IsInvalidArgument},
		{name: "validation", err: dnderr.Validationf("pack size %d", 0), code: dnderr.CodeValidation, check: dnderr.IsValidation},
		{name: "corrupt", err: dnderr.WrapWithCode(errors.New("eof"), dnderr.CodeCorrupt, "decode"), code: dnderr.CodeCorrupt, check: dnderr.IsCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, dnderr.GetCode(tt.err))
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(fmt.Errorf("outer: %w", tt.err)), "codes survive stdlib wrapping")
		})
	}

	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(errors.New("plain")))
	assert.False(t, dnderr.Is(nil, dnderr.CodeNotFound))
}
