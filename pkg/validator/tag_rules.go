package validator

import (
	"fmt"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

// playgroundValidate is created on first use. *playground.Validate caches
// parsed tags and is safe for concurrent use.
var playgroundValidate = sync.OnceValue(func() *playground.Validate {
	return playground.New()
})

// Tag checks the value with a go-playground/validator tag expression such
// as "url", "ipv4", "hexcolor" or "oneof=red green". The tag is checked
// when the rule is built: an expression go-playground/validator does not
// know is a configuration fault and the rule is skipped.
func Tag(tag string, msg ...string) Rule {
	r := Rule{
		Name:    tag,
		Message: message(fmt.Sprintf("The value ':value' doesn't satisfy the '%s' rule", tag), msg),
		Check: func(value, _ any) (ok bool) {
			// Validators panic on field kinds they do not support.
			defer func() {
				if recover() != nil {
					ok = false
				}
			}()
			return playgroundValidate().Var(value, tag) == nil
		},
	}
	if err := checkTag(tag); err != nil {
		r.Err = err
	}
	return r
}

// checkTag runs the tag once against an empty string. go-playground panics
// on undefined tags instead of returning an error.
func checkTag(tag string) (err error) {
	if tag == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidTag, rec)
		}
	}()
	_ = playgroundValidate().Var("", tag)
	return nil
}
