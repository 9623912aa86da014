package enumset

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// FromYAML builds a string Set from a YAML sequence of scalars:
//
//	- pending
//	- active
//	- closed
//
// Parse failures are joined with ErrFailedToParseYAML. The decoded values go
// through the same validation as New, so an empty sequence or repeated
// entries fail the usual way.
func FromYAML(data []byte) (*Set[string], error) {
	var values []string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return New(values...)
}
