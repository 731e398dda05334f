// Package yamlutil isolates the YAML dependency used by recipes and config.
// Decoding is always strict: unknown keys are errors.
package yamlutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// Decode decodes a single YAML document into v, rejecting unknown fields.
func Decode(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// DecodeFile reads at most MaxInputSize+1 bytes from path and decodes them.
// File errors are returned unwrapped so callers can test them with
// errors.Is(err, fs.ErrNotExist).
func DecodeFile(path string, v any) error {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, int64(MaxInputSize)+1))
	if err != nil {
		return err
	}
	return Decode(data, v)
}

// Describe returns a multi-line description of a decoding error with the
// offending source lines, or err.Error() for other errors.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return yaml.FormatError(err, false, true)
}
