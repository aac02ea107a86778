package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(1, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 42, ParseInt("42", 1))
	assert.Equal(t, 5, ParseInt("", 5))
	assert.Equal(t, 5, ParseInt("abc", 5))
	assert.Equal(t, 5, ParseInt("-3", 5))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("123")
	assert.NoError(t, err)
	assert.Equal(t, int64(123), id)

	_, err = ParseID("abc")
	assert.Error(t, err)
}

// TestPasswordHashRoundTrip makes sure hashes verify and never store the
// plaintext.
func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("sw0rdfish")
	assert.NoError(t, err)
	assert.NotEqual(t, "sw0rdfish", hash)

	assert.True(t, CheckPasswordHash("sw0rdfish", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Name  string  `validate:"required"`
		Price float64 `validate:"gte=0"`
	}

	errs := ValidateStruct(payload{Name: "ok", Price: 1})
	assert.Nil(t, errs)

	errs = ValidateStruct(payload{Price: -1})
	assert.Equal(t, "This field is required", errs["Name"])
	assert.Equal(t, "Must be greater than or equal to 0", errs["Price"])
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token := GenerateSessionToken()

	parsed, err := ParseUUID(token.String())
	assert.NoError(t, err)
	assert.Equal(t, token, parsed)

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}
