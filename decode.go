package rx

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.
var validate = validator.New()

// Decode returns an Observable that unmarshals every payload of source into
// T with codec and validates the result using go-playground/validator
// struct tags. A nil codec means AutoCodec. The first payload that fails to
// decode or validate becomes the terminal error of the subscription.
//
// Example:
//
//	type Config struct {
//	    Port int `yaml:"port" validate:"min=1,max=65535"`
//	}
//
//	configs := rx.Decode[Config](rx.FromFile("config.yaml"), rx.YAMLCodec{})
func Decode[T any](source Observable[[]byte], codec Codec) Observable[T] {
	if codec == nil {
		codec = AutoCodec{}
	}
	return TryMap(source, func(raw []byte) (T, error) {
		var result T
		concrete := resolveCodec(codec, raw)
		if err := concrete.Unmarshal(raw, &result); err != nil {
			if ct := concrete.ContentType(); ct != "" {
				return result, fmt.Errorf("unmarshal failed (%s): %w", ct, err)
			}
			return result, fmt.Errorf("unmarshal failed: %w", err)
		}
		if err := validate.Struct(result); err != nil {
			var invalid *validator.InvalidValidationError
			if !errors.As(err, &invalid) {
				return result, fmt.Errorf("validation failed: %w", err)
			}
		}
		return result, nil
	})
}
