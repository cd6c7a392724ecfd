package rx

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Content types reported by the built-in codecs.
const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/x-yaml"
)

// Codec turns a raw payload into a value for Decode.
type Codec interface {
	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error

	// ContentType names the format, or returns "" when it depends on the
	// payload.
	ContentType() string
}

// Resolver is implemented by codecs that pick a concrete Codec per payload.
// Decode uses it to report which format a payload failed to decode as.
type Resolver interface {
	Resolve(data []byte) Codec
}

// JSONCodec decodes JSON.
type JSONCodec struct{}

func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (JSONCodec) ContentType() string                { return ContentTypeJSON }

// YAMLCodec decodes YAML.
type YAMLCodec struct{}

func (YAMLCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }
func (YAMLCodec) ContentType() string                { return ContentTypeYAML }

// AutoCodec treats payloads starting with '{' or '[' as JSON and everything
// else as YAML.
type AutoCodec struct{}

// Resolve returns the codec used for data.
func (AutoCodec) Resolve(data []byte) Codec {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return JSONCodec{}
	}
	return YAMLCodec{}
}

// Unmarshal decodes data with the codec Resolve picks.
func (a AutoCodec) Unmarshal(data []byte, v any) error {
	return a.Resolve(data).Unmarshal(data, v)
}

// ContentType returns "" since the format varies per payload.
func (AutoCodec) ContentType() string { return "" }

var (
	_ Codec    = JSONCodec{}
	_ Codec    = YAMLCodec{}
	_ Codec    = AutoCodec{}
	_ Resolver = AutoCodec{}
)

// resolveCodec returns the concrete codec for a payload.
func resolveCodec(codec Codec, data []byte) Codec {
	if r, ok := codec.(Resolver); ok {
		return r.Resolve(data)
	}
	return codec
}
