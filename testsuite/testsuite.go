// Package testsuite runs the decoder against the
// github.com/BurntSushi/toml-test test suite.
//
// The data files are included within the toml-test package, so no file
// generation is required.
package testsuite

import (
	"encoding/json"
	"errors"

	"github.com/parsekit/toml"
)

type parser struct{}

// Decode parses input and returns the tagged JSON representation
// toml-test compares against the expected output.
func (parser) Decode(input string) (output string, outputIsError bool, err error) {
	v, err := toml.Parse([]byte(input))
	if err != nil {
		return err.Error(), true, nil
	}

	j, err := json.MarshalIndent(addTag("", v), "", "  ")
	if err != nil {
		return "", false, err
	}
	return string(j), false, nil
}

// Encode satisfies the toml-test Parser interface. There is no encoder,
// so encoder tests cannot run.
func (parser) Encode(input string) (output string, outputIsError bool, err error) {
	return "", false, errors.New("toml: encoding is not supported")
}
