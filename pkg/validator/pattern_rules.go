package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// RegularExpression checks the stringified value against re. A nil re is a
// configuration fault and the rule is skipped.
func RegularExpression(re *regexp.Regexp, msg ...string) Rule {
	r := Rule{
		Name:    "regularExpression",
		Message: message("The value ':value' doesn't match the regular expression specification", msg),
		Check: func(value, _ any) bool {
			if re == nil {
				return true
			}
			return re.MatchString(stringify(value))
		},
	}
	if re == nil {
		r.Err = fmt.Errorf("%w: nil pattern", ErrInvalidPattern)
	}
	return r
}

// Pattern compiles pattern and returns a RegularExpression rule. A pattern
// that does not compile is a configuration fault and the rule is skipped.
func Pattern(pattern string, msg ...string) Rule {
	re, err := regexp.Compile(pattern)
	if err != nil {
		r := RegularExpression(nil, msg...)
		r.Err = fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		return r
	}
	return RegularExpression(re, msg...)
}

// EmailAddress checks for a plausible email address. Empty values fail.
func EmailAddress(msg ...string) Rule {
	return Rule{
		Name:    "emailAddress",
		Message: message("Invalid email address. The valid email example: john.doe@example.com", msg),
		Check: func(value, _ any) bool {
			if isEmpty(value) {
				return false
			}
			s, ok := asString(value)
			return ok && emailRegex.MatchString(s)
		},
	}
}

// ContainUpperLowerCase checks for at least one upper and one lower case letter.
func ContainUpperLowerCase(msg ...string) Rule {
	return Rule{
		Name:    "containUpperLowerCase",
		Message: message("The value should contain both upper and lower case letters", msg),
		Check: func(value, _ any) bool {
			c := classify(stringify(value))
			return c.upper && c.lower
		},
	}
}

// ContainNumber checks for at least one decimal digit.
func ContainNumber(msg ...string) Rule {
	return Rule{
		Name:    "containNumber",
		Message: message("The value should contain a number", msg),
		Check: func(value, _ any) bool {
			return classify(stringify(value)).digit
		},
	}
}

// ContainSpecialChar checks for at least one rune that is neither an ASCII
// letter nor a digit.
func ContainSpecialChar(msg ...string) Rule {
	return Rule{
		Name:    "containSpecialChar",
		Message: message("The value should contain a special character", msg),
		Check: func(value, _ any) bool {
			return classify(stringify(value)).special
		},
	}
}

// StrongPassword requires at least 8 characters with upper and lower case
// letters, a digit and a special character.
func StrongPassword(msg ...string) Rule {
	return Rule{
		Name:    "strongPassword",
		Message: message("The password must be at least 8 characters long and contain upper and lower case letters, a number and a special character", msg),
		Check: func(value, _ any) bool {
			s := stringify(value)
			if utf8.RuneCountInString(s) < 8 {
				return false
			}
			c := classify(s)
			return c.upper && c.lower && c.digit && c.special
		},
	}
}

type charClasses struct {
	upper, lower, digit, special bool
}

// classify mirrors the ASCII classes [A-Z], [a-z], \d and [^a-zA-Z\d].
func classify(s string) charClasses {
	var c charClasses
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.special = true
		}
	}
	return c
}
