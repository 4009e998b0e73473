package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  Token
	}{
		{"plain", "12", Token{Primary: 12}},
		{"leading zeros", "007", Token{Primary: 7}},
		{"decimal", "12.5", Token{Primary: 12, Part: 5, HasPart: true}},
		{"decimal with other separator", "12-3", Token{Primary: 12, Part: 3, HasPart: true}},
		{"decimal with long separator", "12 part 3", Token{Primary: 12, Part: 3, HasPart: true}},
		{"decimal keeps part digits as integer", "12.05", Token{Primary: 12, Part: 5, HasPart: true}},
		{"lettered", "12b", Token{Primary: 12, Part: 2, HasPart: true}},
		{"lettered upper case", "12B", Token{Primary: 12, Part: 2, HasPart: true}},
		{"lettered z", "3z", Token{Primary: 3, Part: 26, HasPart: true}},
		{"lettered with gap", "12 extra a", Token{Primary: 12, Part: 1, HasPart: true}},
		{"decimal and letter resolves to letter", "12.5b", Token{Primary: 12, Part: 2, HasPart: true}},
		{"trailing digit after letters", "12.5.3", Token{Primary: 12, Part: 3, HasPart: true}},
		{"trailing underscore", "12_", Token{Primary: 12, Part: 0, HasPart: true}},
		{"trailing non-ascii letter", "12é", Token{Primary: 12, Part: 'é' - 'a' + 1, HasPart: true}},
		{"trailing upper non-ascii letter", "12É", Token{Primary: 12, Part: 'é' - 'a' + 1, HasPart: true}},
		{"text", "Oneshot", Token{Primary: 1}},
		{"empty", "", Token{Primary: 1}},
		{"padded number", " 42 ", Token{Primary: 42}},
		{"negative", "-3", Token{Primary: 1}},
		{"overflow", "99999999999999999999999", Token{Primary: 1}},
		{"trailing punctuation", "12!", Token{Primary: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.label))
		})
	}
}

func TestParseOptional(t *testing.T) {
	assert.Equal(t, Token{}, ParseOptional(nil))
	assert.Equal(t, Token{Primary: 12}, ParseOptional(strPtr("12")))
}

func TestParseIsTotal(t *testing.T) {
	labels := []string{"", " ", ".", "..5", "a1", "1\n2", "１２", "12.", "½", "\x00", "0.0.0.0", "99999999999999999999.1"}
	for _, label := range labels {
		assert.NotPanics(t, func() { Parse(label) }, label)
	}
}

func TestTokenComparison(t *testing.T) {
	twelve := Parse("12")
	twelveHalf := Parse("12.5")
	twelveB := Parse("12b")
	thirteen := Parse("13")

	assert.True(t, twelve.Less(thirteen))
	assert.True(t, thirteen.Greater(twelve))
	assert.True(t, twelveB.Less(twelveHalf))
	assert.False(t, twelveHalf.Less(twelveB))

	// a missing part is neither before nor after a present one
	assert.False(t, twelve.Less(twelveHalf))
	assert.False(t, twelveHalf.Less(twelve))
	assert.False(t, twelve.Greater(twelveHalf))
	assert.True(t, twelve.Equal(twelveHalf))
	assert.True(t, twelveHalf.Equal(twelve))

	assert.False(t, twelveB.Equal(twelveHalf))
	assert.True(t, twelveHalf.Equal(Parse("12-5")))
	assert.False(t, twelve.Equal(thirteen))
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "12", Parse("12").String())
	assert.Equal(t, "12.2", Parse("12b").String())
}
