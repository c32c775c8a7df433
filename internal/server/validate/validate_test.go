package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain address", "ann@example.com", true},
		{"subdomain", "ann.b@mail.example.org", true},
		{"plus tag", "ann+kudos@example.com", true},
		{"no at sign", "annexample.com", false},
		{"empty", "", false},
		{"missing local part", "@example.com", false},
		{"missing domain", "ann@", false},
		{"whitespace", "ann smith@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Email(tt.value)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.Equal(t, "Please enter a valid email address", msg)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Password(""))
	assert.NotEmpty(t, Password("12345"))
	assert.Empty(t, Password("123456"))
	assert.Empty(t, Password("a much longer password"))
}

func TestName(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Name(""))
	assert.NotEmpty(t, Name("ab"))
	assert.Empty(t, Name("ann"))
	assert.Empty(t, Name("MARKETING"))
}
