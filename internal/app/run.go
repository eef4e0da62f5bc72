package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/stverner/vergrid/internal/config"
	"github.com/stverner/vergrid/matrix"
)

// Target is the artifact emitted for one combination. CI consumers use
// Name as the job identifier and Axes as the job's version parameters.
type Target struct {
	Name    string            `json:"name"`
	Matrix  string            `json:"matrix"`
	Axes    map[string]string `json:"axes"`
	Default bool              `json:"default,omitempty"`
}

// Run expands every selected matrix and writes the targets to the app's
// output writer.
func (a *App) Run(ctx context.Context) error {
	specs := a.model.Specs
	if a.cfg.MatrixName != "" {
		spec := a.model.Spec(a.cfg.MatrixName)
		if spec == nil {
			return fmt.Errorf("matrix %q is not defined", a.cfg.MatrixName)
		}
		specs = []*config.Spec{spec}
	}
	if len(specs) == 0 {
		return fmt.Errorf("no matrix definitions found in %s", a.cfg.GridPath)
	}

	results := make(map[string]map[string]*Target, len(specs))
	for _, spec := range specs {
		expanded, err := a.expand(ctx, spec)
		if err != nil {
			return fmt.Errorf("matrix %q: %w", spec.Name, err)
		}
		results[spec.Name] = expanded
		a.logger.Info("matrix expanded", "matrix", spec.Name, "targets", spec.Axes.Size())
	}

	if a.cfg.Output == OutputJSON {
		return a.writeJSON(results)
	}
	return a.writeText(specs, results)
}

// expand builds one matrix into its named targets. The builder pipeline
// carries the Traced wrapper when debug logging is enabled.
func (a *App) expand(ctx context.Context, spec *config.Spec) (map[string]*Target, error) {
	b := matrix.New(spec.Axes, spec.Default)
	if a.logger.Enabled(ctx, slog.LevelDebug) {
		b = b.Map(matrix.Traced(a.logger))
	}

	fn := func(c matrix.Combination) (any, error) {
		axes := make(map[string]string, c.Len())
		for _, axis := range c.Axes() {
			v, _ := c.Value(axis)
			axes[axis] = matrix.ValueString(v)
		}
		return &Target{
			Name:   matrix.DeriveName(spec.Name, c),
			Matrix: spec.Name,
			Axes:   axes,
		}, nil
	}

	var built map[string]any
	var err error
	if spec.HasDefault {
		built, err = b.BuildWithDefault(spec.Name, fn)
	} else {
		built, err = b.Build(spec.Name, fn)
	}
	if err != nil {
		return nil, err
	}

	out := make(map[string]*Target, len(built))
	for name, v := range built {
		out[name] = v.(*Target)
	}
	if spec.HasDefault {
		// The default key aliases the designated target, so the mark shows
		// up under its real name as well.
		out[matrix.DefaultKey].Default = true
	}
	return out, nil
}

// writeText emits one target name per line in product order, matrices in
// definition order, with the default alias last.
func (a *App) writeText(specs []*config.Spec, results map[string]map[string]*Target) error {
	for _, spec := range specs {
		targets := results[spec.Name]
		for c := range spec.Axes.Combinations() {
			name := matrix.DeriveName(spec.Name, c)
			if _, err := fmt.Fprintln(a.outW, targets[name].Name); err != nil {
				return err
			}
		}
		if spec.HasDefault {
			if _, err := fmt.Fprintf(a.outW, "default -> %s\n", targets[matrix.DefaultKey].Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeJSON emits the full matrix-name -> target-name -> target mapping.
func (a *App) writeJSON(results map[string]map[string]*Target) error {
	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
