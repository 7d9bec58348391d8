// Package conf contains an alias for map encoded configuration
// and a structure unmarshaller
package conf

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
)

// TagName is the tag name used for decoder customization
const TagName = "cfg"

// ErrNilConfigMap returned if the unmarshalling map is nil and could
// not be decoded into a structure
var ErrNilConfigMap = errors.New("unable to process nil map")

// MapConfig is just an alias for map[string]any
type MapConfig map[string]any

// MarshalZerologObject writes the map into a zerolog event
func (m MapConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Fields(map[string]any(m))
}

// stringToUint64HookFunc converts "0x"-prefixed strings into uint64,
// which YAML cannot express for values above 2^63-1 (generator state
// words and seeds routinely occupy the full 64-bit range).
func stringToUint64HookFunc() mapstructure.DecodeHookFuncType {
	return func(f, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Uint64 {
			return data, nil
		}
		s := data.(string)
		if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
			return data, nil
		}
		return strconv.ParseUint(s[2:], 16, 64)
	}
}

// Unmarshal decodes the receiver map into the provided structure.
// The decoder automatically unmarshals inherited structures, converts
// string-ed durations (1s, 2m, 3h...) into time.Duration and hex
// strings into uint64. The tag used for decode customization is
// conf.TagName.
func (m MapConfig) Unmarshal(into any) error {
	if m == nil {
		return ErrNilConfigMap
	}
	if len(m) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			stringToUint64HookFunc(),
		),
		Squash:  true,
		Result:  into,
		TagName: TagName,
	})
	if err == nil {
		err = decoder.Decode(m)
	}
	return err
}

// NamedMapConfig is a MapConfig labelled with the name of the
// component it configures.
type NamedMapConfig struct {
	Name   string    `yaml:"name"`
	Config MapConfig `yaml:"config"`
}

// MarshalZerologObject writes the name and nested map into a zerolog
// event
func (nm NamedMapConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", nm.Name).Dict("config", zerolog.Dict().EmbedObject(nm.Config))
}
