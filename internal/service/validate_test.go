package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username any
		password any
		wantErr  error
	}{
		{name: "ok", username: "alice", password: "secret1"},
		{name: "min lengths", username: "abc", password: "123456"},
		{name: "short username", username: "ab", password: "secret1", wantErr: ErrInvalidRegisterName},
		{name: "missing username", username: nil, password: "secret1", wantErr: ErrInvalidRegisterName},
		{name: "numeric username", username: float64(12345), password: "secret1", wantErr: ErrInvalidRegisterName},
		{name: "short password", username: "alice", password: "12345", wantErr: ErrInvalidRegisterPass},
		{name: "missing password", username: "alice", password: nil, wantErr: ErrInvalidRegisterPass},
		{name: "object password", username: "alice", password: map[string]any{"a": 1}, wantErr: ErrInvalidRegisterPass},
		{name: "both bad reports username", username: "", password: "", wantErr: ErrInvalidRegisterName},
		{name: "password at bcrypt limit", username: "alice", password: strings.Repeat("p", MaxPasswordBytes)},
		{name: "password over bcrypt limit", username: "alice", password: strings.Repeat("p", MaxPasswordBytes+1), wantErr: ErrPasswordTooLong},
		{name: "multibyte password over limit", username: "alice", password: strings.Repeat("é", 37), wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, p, err := ValidateRegister(tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, u)
			assert.Equal(t, tt.password, p)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	_, _, err := ValidateLogin("alice", "x")
	assert.NoError(t, err)

	for _, in := range [][2]any{
		{"", "secret"},
		{"alice", ""},
		{nil, "secret"},
		{"alice", true},
		{float64(1), float64(2)},
	} {
		_, _, err := ValidateLogin(in[0], in[1])
		assert.ErrorIs(t, err, ErrInvalidLogin, "input %v", in)
	}
}

func TestValidateItem(t *testing.T) {
	t.Parallel()

	name, desc, err := ValidateItem("  Book  ", "paper")
	require.NoError(t, err)
	assert.Equal(t, "Book", name)
	require.NotNil(t, desc)
	assert.Equal(t, "paper", *desc)

	name, desc, err = ValidateItem("Pen", nil)
	require.NoError(t, err)
	assert.Equal(t, "Pen", name)
	assert.Nil(t, desc)

	_, desc, err = ValidateItem("Pen", "")
	require.NoError(t, err)
	require.NotNil(t, desc)
	assert.Equal(t, "", *desc)

	for _, bad := range []any{nil, "", "   ", float64(3), []any{"Book"}} {
		_, _, err := ValidateItem(bad, nil)
		assert.ErrorIs(t, err, ErrInvalidItemName, "name %v", bad)
	}

	_, _, err = ValidateItem("Book", float64(5))
	assert.ErrorIs(t, err, ErrInvalidItemDesc)
	_, _, err = ValidateItem("", float64(5))
	assert.ErrorIs(t, err, ErrInvalidItemName)
}

func TestParseItemID(t *testing.T) {
	t.Parallel()

	id, err := ParseItemID("42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	id, err = ParseItemID("0")
	require.NoError(t, err)
	assert.Zero(t, id)

	id, err = ParseItemID("9223372036854775807")
	require.NoError(t, err)
	assert.EqualValues(t, uint64(9223372036854775807), id)

	for _, bad := range []string{"", "abc", "-1", "1.5", " 1", "1 ", "+1", "0x10", "١٢"} {
		_, err := ParseItemID(bad)
		assert.ErrorIs(t, err, ErrInvalidID, "id %q", bad)
		assert.ErrorIs(t, err, ErrValidation)
	}

	for _, unreachable := range []string{
		"9223372036854775808",
		"18446744073709551615",
		"18446744073709551616",
		"99999999999999999999",
	} {
		_, err := ParseItemID(unreachable)
		assert.ErrorIs(t, err, ErrNotFound, "id %q", unreachable)
		assert.NotErrorIs(t, err, ErrValidation)
	}
}
