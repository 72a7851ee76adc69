package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// schemaSource constrains a decoded Config.
const schemaSource = `
gravity: number & >0
samples: int & >=0
launch?: {
	speed:     number
	angle_deg: number
}
plot: {
	x_min: number
	x_max: number & >x_min
	y_min: number
	y_max: number & >y_min
	width: number & >=0
	dpi:   int & >0
}
animation: {
	duration:    number & >0
	frame_rate:  number & >0
	compression: number & >0
}
`

// Validate unifies cfg with the schema and reports every violation.
func Validate(cfg Config) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("config.cue"))
	if err := schema.Err(); err != nil {
		return &Error{Code: ErrCodeSchema, Message: fmt.Sprintf("compiling schema: %v", err)}
	}

	// JSON is valid CUE and drops the optional launch block when unset.
	data, err := json.Marshal(cfg)
	if err != nil {
		return &Error{Code: ErrCodeInvalid, Message: fmt.Sprintf("encoding config: %v", err)}
	}
	value := ctx.CompileBytes(data, cue.Filename("config.json"))
	if err := value.Err(); err != nil {
		return &Error{Code: ErrCodeInvalid, Message: fmt.Sprintf("encoding config: %v", err)}
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return violations(err)
	}
	return nil
}

// ValidateOverrides validates cfg after flags were applied on top of a
// loaded file. Violations carry ErrCodeOverride.
func ValidateOverrides(cfg Config) error {
	err := Validate(cfg)
	var ce *Error
	if errors.As(err, &ce) && ce.Code == ErrCodeInvalid {
		ce.Code = ErrCodeOverride
	}
	return err
}

// violations converts CUE errors into a config Error listing each field.
func violations(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &Error{Code: ErrCodeInvalid, Message: err.Error()}
	}

	first := errs[0]
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return &Error{
		Code:    ErrCodeInvalid,
		Field:   strings.Join(first.Path(), "."),
		Message: strings.Join(msgs, "; "),
	}
}
