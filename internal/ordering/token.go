package ordering

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a chapter or volume label reduced to a primary number and an
// optional part, e.g. "12.5" is {12, 5} and "12b" is {12, 2}.
type Token struct {
	Primary uint64
	Part    uint64
	HasPart bool
}

var (
	plainPattern    = regexp.MustCompile(`^(\d+)$`)
	decimalPattern  = regexp.MustCompile(`^(\d+)\D+(\d+)$`)
	letteredPattern = regexp.MustCompile(`^(\d+).*([\p{L}\p{N}_])$`)
)

type matcher func(label string) (Token, bool)

// matchers are tried in order and the first match wins. "12.5b" is not a
// decimal (it does not end in digits) so it lands on the lettered form as {12, 2}.
var matchers = []matcher{
	matchPlain,
	matchDecimal,
	matchLettered,
}

func matchPlain(label string) (Token, bool) {
	m := plainPattern.FindStringSubmatch(label)
	if m == nil {
		return Token{}, false
	}
	primary, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Token{}, false
	}
	return Token{Primary: primary}, true
}

func matchDecimal(label string) (Token, bool) {
	m := decimalPattern.FindStringSubmatch(label)
	if m == nil {
		return Token{}, false
	}
	primary, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Token{}, false
	}
	part, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Token{}, false
	}
	return Token{Primary: primary, Part: part, HasPart: true}, true
}

func matchLettered(label string) (Token, bool) {
	m := letteredPattern.FindStringSubmatch(label)
	if m == nil {
		return Token{}, false
	}
	primary, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Token{}, false
	}
	return Token{Primary: primary, Part: ordinal(lastRune(m[2])), HasPart: true}, true
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// ordinal maps a to 1 through z to 26 regardless of case. A trailing digit
// counts as its own value. Letters past z continue from their code point and
// anything sorting before a (the underscore) is 0.
func ordinal(r rune) uint64 {
	if r >= '0' && r <= '9' {
		return uint64(r - '0')
	}
	r = unicode.ToLower(r)
	if r < 'a' {
		return 0
	}
	return uint64(r-'a') + 1
}

// Parse never fails: labels nothing recognises become {1}, or the label's
// value when it is a bare number surrounded by whitespace.
func Parse(label string) Token {
	for _, match := range matchers {
		if token, ok := match(label); ok {
			return token
		}
	}
	if primary, err := strconv.ParseUint(strings.TrimSpace(label), 10, 64); err == nil {
		return Token{Primary: primary}
	}
	return Token{Primary: 1}
}

// ParseOptional treats a missing label as zero.
func ParseOptional(label *string) Token {
	if label == nil {
		return Token{}
	}
	return Parse(*label)
}

// Equal compares primaries. Parts only break equality when both sides have one.
func (t Token) Equal(o Token) bool {
	if t.Primary != o.Primary {
		return false
	}
	if !t.HasPart || !o.HasPart {
		return true
	}
	return t.Part == o.Part
}

// Less orders by primary, then by part when both sides carry one. A token
// with a part and one without are not ordered against each other.
func (t Token) Less(o Token) bool {
	if t.Primary != o.Primary {
		return t.Primary < o.Primary
	}
	return t.HasPart && o.HasPart && t.Part < o.Part
}

func (t Token) Greater(o Token) bool {
	return o.Less(t)
}

func (t Token) String() string {
	if !t.HasPart {
		return strconv.FormatUint(t.Primary, 10)
	}
	return strconv.FormatUint(t.Primary, 10) + "." + strconv.FormatUint(t.Part, 10)
}
