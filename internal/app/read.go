package app

import (
	"encoding/json"
	"io"

	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

func Read(reader io.ReadCloser, logger *zerolog.Logger) ([]byte, error) {
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close request body")
		}
	}()

	content, err := io.ReadAll(reader)

	if err != nil {
		return nil, err
	}

	return content, nil
}

// ReadJSON decodes content into a new T. Empty content yields the zero value.
func ReadJSON[T any](content []byte) (*T, error) {
	var t T
	if len(content) == 0 {
		return &t, nil
	}

	err := json.Unmarshal(content, &t)

	if err != nil {
		return nil, err
	}

	return &t, nil
}
