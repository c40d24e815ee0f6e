package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/goccy/snowflake-bindings/types"
)

type Source func(*Loader) error

func newValidator() *validator.Validate {
	validate := validator.New()
	types.RegisterTypeValidation(validate)
	return validate
}

func YAMLSource(path string) Source {
	return func(l *Loader) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		dec := yaml.NewDecoder(
			bytes.NewBuffer(content),
			yaml.Validator(newValidator()),
			yaml.Strict(),
		)
		var req types.Request
		if err := dec.Decode(&req); err != nil {
			return errors.New(yaml.FormatError(err, false, true))
		}
		return l.addRequest(&req)
	}
}

func JSONSource(path string) Source {
	return func(l *Loader) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()
		dec.DisallowUnknownFields()
		var req types.Request
		if err := dec.Decode(&req); err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
		if err := newValidator().Struct(&req); err != nil {
			return fmt.Errorf("invalid bind file %s: %w", path, err)
		}
		return l.addRequest(&req)
	}
}

func TOMLSource(path string) Source {
	return func(l *Loader) error {
		var req types.Request
		if _, err := toml.DecodeFile(path, &req); err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
		if err := newValidator().Struct(&req); err != nil {
			return fmt.Errorf("invalid bind file %s: %w", path, err)
		}
		return l.addRequest(&req)
	}
}

func StructSource(reqs ...*types.Request) Source {
	return func(l *Loader) error {
		for _, req := range reqs {
			if err := newValidator().Struct(req); err != nil {
				return fmt.Errorf("invalid request: %w", err)
			}
			if err := l.addRequest(req); err != nil {
				return err
			}
		}
		return nil
	}
}
