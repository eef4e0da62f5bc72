package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/stverner/vergrid/internal/config"
	"github.com/stverner/vergrid/internal/ctxlog"
	"github.com/stverner/vergrid/internal/fsutil"
)

// Loader reads matrix definitions from .hcl files.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader { return &Loader{} }

// Load implements config.Loader. It discovers every .hcl file under the
// given paths and aggregates their matrix blocks into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtensions(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find matrix files in %s: %w", path, err)
		}
		for _, file := range files {
			logger.Debug("parsing matrix file", "path", file)
			part, err := loadFile(file, parser)
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

// loadFile parses and translates a single definition file.
func loadFile(path string, parser *hclparse.Parser) (*config.Model, error) {
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var parsed matrixFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	model := &config.Model{}
	for _, block := range parsed.Matrices {
		spec, err := translateMatrix(block)
		if err != nil {
			return nil, fmt.Errorf("matrix %q in %s: %w", block.Name, path, err)
		}
		model.Specs = append(model.Specs, spec)
	}
	return model, nil
}
