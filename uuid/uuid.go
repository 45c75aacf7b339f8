package uuid

import (
	gouuid "github.com/nu7hatch/gouuid"

	verr "github.com/echolane/voice-utils/errors"
)

type Generator interface {
	Generate() (string, error)
}

type v4Generator struct{}

func NewGenerator() Generator {
	return v4Generator{}
}

func (g v4Generator) Generate() (string, error) {
	uuid, err := gouuid.NewV4()
	if err != nil {
		return "", verr.WrapError(err, "Generating V4 uuid")
	}

	return uuid.String(), nil
}
