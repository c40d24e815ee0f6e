// Package loader reads bind files and turns their parameters into bindings.
package loader

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goccy/snowflake-bindings/bind"
	"github.com/goccy/snowflake-bindings/internal/logger"
	"github.com/goccy/snowflake-bindings/types"
)

type Loader struct {
	sqlText string
	params  []*types.Param
	names   map[string]struct{}
}

func New() *Loader {
	return &Loader{names: map[string]struct{}{}}
}

func (l *Loader) Load(sources ...Source) error {
	for _, source := range sources {
		if err := source(l); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) addRequest(req *types.Request) error {
	if req.SQLText != "" {
		if l.sqlText != "" && l.sqlText != req.SQLText {
			return fmt.Errorf("conflicting sql text: %q and %q", l.sqlText, req.SQLText)
		}
		l.sqlText = req.SQLText
	}
	for _, param := range req.Bindings {
		if err := l.addParam(param); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) addParam(param *types.Param) error {
	if _, exists := l.names[param.Name]; exists {
		return fmt.Errorf("duplicate parameter name %q", param.Name)
	}
	if param.Null && param.Value != nil {
		return fmt.Errorf("parameter %q has both a value and is_null: true", param.Name)
	}
	l.names[param.Name] = struct{}{}
	l.params = append(l.params, param)
	return nil
}

func (l *Loader) SQLText() string {
	return l.sqlText
}

func (l *Loader) Params() []*types.Param {
	return l.params
}

// Values converts every loaded parameter to its bindable form.
func (l *Loader) Values() (map[string]bind.Value, error) {
	ret := make(map[string]bind.Value, len(l.params))
	for _, param := range l.params {
		if param.Null {
			ret[param.Name] = bind.Null
			continue
		}
		value, err := bind.Convert(param.Type, param.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to convert parameter %q: %w", param.Name, err)
		}
		ret[param.Name] = value
	}
	return ret, nil
}

func (l *Loader) Bindings(ctx context.Context) (bind.Bindings, error) {
	values, err := l.Values()
	if err != nil {
		return nil, err
	}
	bindings, err := bind.AssembleBindings(ctx, values)
	if err != nil {
		return nil, err
	}
	log := logger.Logger(ctx)
	for _, name := range bindings.Names() {
		b := bindings[name]
		log.Debug(
			"assembled binding",
			zap.String("name", name),
			zap.String("type", b.SQLType().String()),
			zap.String("fmt", b.Format()),
			zap.Bool("null", b.Value.IsNull()),
		)
	}
	return bindings, nil
}
