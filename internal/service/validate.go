package service

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MinUsernameLen   = 3
	MinPasswordLen   = 6
	// bcrypt refuses longer input.
	MaxPasswordBytes = 72
)

var itemIDPattern = regexp.MustCompile(`^\d+$`)

// JSON values arrive as any so that a number or object in a string field is
// reported as a validation error rather than a decode error.

func ValidateRegister(username, password any) (string, string, error) {
	u, ok := username.(string)
	if !ok || utf8.RuneCountInString(u) < MinUsernameLen {
		return "", "", ErrInvalidRegisterName
	}
	p, ok := password.(string)
	if !ok || utf8.RuneCountInString(p) < MinPasswordLen {
		return "", "", ErrInvalidRegisterPass
	}
	if len(p) > MaxPasswordBytes {
		return "", "", ErrPasswordTooLong
	}
	return u, p, nil
}

func ValidateLogin(username, password any) (string, string, error) {
	u, uok := username.(string)
	p, pok := password.(string)
	if !uok || !pok || u == "" || p == "" {
		return "", "", ErrInvalidLogin
	}
	return u, p, nil
}

// ValidateItem returns the trimmed name and the optional description.
func ValidateItem(name, description any) (string, *string, error) {
	n, ok := name.(string)
	n = strings.TrimSpace(n)
	if !ok || n == "" {
		return "", nil, ErrInvalidItemName
	}

	switch d := description.(type) {
	case nil:
		return n, nil, nil
	case string:
		return n, &d, nil
	default:
		return "", nil, ErrInvalidItemDesc
	}
}

// ParseItemID rejects anything that is not all digits with ErrInvalidID.
// Well-formed ids beyond the store's signed 64-bit key range cannot name a row
// and yield ErrNotFound without a store round trip.
func ParseItemID(raw string) (uint, error) {
	if !itemIDPattern.MatchString(raw) {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint(id), nil
}
