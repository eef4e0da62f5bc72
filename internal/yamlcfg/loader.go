// Package yamlcfg loads matrix definitions from YAML files into the
// format-agnostic config model. The document shape mirrors the HCL
// front end:
//
//	matrices:
//	  - name: py
//	    axes:
//	      - name: python
//	        values: ["3.9", "3.10"]
//	      - name: arch
//	        values: [x64]
//	    default:
//	      python: "3.10"
//	      arch: x64
package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/stverner/vergrid/internal/config"
	"github.com/stverner/vergrid/internal/ctxlog"
	"github.com/stverner/vergrid/internal/fsutil"
	"github.com/stverner/vergrid/matrix"
)

// Loader reads matrix definitions from .yaml and .yml files.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader { return &Loader{} }

// fileDoc, matrixDoc and axisDoc mirror the YAML document shape.
type fileDoc struct {
	Matrices []matrixDoc `yaml:"matrices"`
}

type matrixDoc struct {
	Name    string         `yaml:"name"`
	Axes    []axisDoc      `yaml:"axes"`
	Default map[string]any `yaml:"default"`
}

type axisDoc struct {
	Name   string `yaml:"name"`
	Values []any  `yaml:"values"`
}

// Load implements config.Loader. It discovers every .yaml/.yml file under
// the given paths and aggregates their matrix definitions into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtensions(path, ".yaml", ".yml")
		if err != nil {
			return nil, fmt.Errorf("failed to find matrix files in %s: %w", path, err)
		}
		for _, file := range files {
			logger.Debug("parsing matrix file", "path", file)
			part, err := loadFile(file)
			if err != nil {
				return nil, err
			}
			if err := model.Merge(part); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
		}
	}

	return model, nil
}

// loadFile decodes and translates a single definition file.
func loadFile(path string) (*config.Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	model := &config.Model{}
	for _, md := range doc.Matrices {
		spec, err := translateMatrix(md)
		if err != nil {
			return nil, fmt.Errorf("matrix %q in %s: %w", md.Name, path, err)
		}
		model.Specs = append(model.Specs, spec)
	}
	return model, nil
}

// translateMatrix converts one decoded matrix document into the agnostic
// model.
func translateMatrix(md matrixDoc) (*config.Spec, error) {
	if md.Name == "" {
		return nil, fmt.Errorf("matrix name must not be empty")
	}

	axes := make([]matrix.Axis, 0, len(md.Axes))
	for _, ad := range md.Axes {
		values := make([]cty.Value, 0, len(ad.Values))
		for _, raw := range ad.Values {
			v, err := scalarValue(raw)
			if err != nil {
				return nil, fmt.Errorf("axis %q: %w", ad.Name, err)
			}
			values = append(values, v)
		}
		axes = append(axes, matrix.Axis{Name: ad.Name, Values: values})
	}

	set, err := matrix.NewAxisSet(axes...)
	if err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	spec := &config.Spec{Name: md.Name, Axes: set}
	if md.Default != nil {
		def, err := translateDefault(md.Default, set)
		if err != nil {
			return nil, err
		}
		spec.Default = def
		spec.HasDefault = true
	}
	return spec, nil
}

// translateDefault builds the default combination in axis declaration
// order. Every declared axis must be assigned, and nothing else.
func translateDefault(raw map[string]any, set matrix.AxisSet) (matrix.Combination, error) {
	def := matrix.NewCombination()
	assigned := make(map[string]struct{}, len(raw))
	for _, a := range set.Axes() {
		rv, ok := raw[a.Name]
		if !ok {
			return matrix.Combination{}, fmt.Errorf("default is missing axis %q", a.Name)
		}
		v, err := scalarValue(rv)
		if err != nil {
			return matrix.Combination{}, fmt.Errorf("default %q: %w", a.Name, err)
		}
		def = def.With(a.Name, v)
		assigned[a.Name] = struct{}{}
	}
	for name := range raw {
		if _, ok := assigned[name]; !ok {
			return matrix.Combination{}, fmt.Errorf("default references unknown axis %q", name)
		}
	}
	return def, nil
}

// scalarValue maps a decoded YAML scalar onto the value types axes accept.
func scalarValue(raw any) (cty.Value, error) {
	switch v := raw.(type) {
	case string:
		return cty.StringVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case float64:
		return cty.NumberFloatVal(v), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T, want string or number", raw)
	}
}
