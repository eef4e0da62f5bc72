package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stverner/vergrid/internal/config"
	"github.com/stverner/vergrid/matrix"
)

// loadString writes src into a temp .hcl file and loads it.
func loadString(t *testing.T, src string) (*config.Model, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "matrix.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return NewLoader().Load(context.Background(), dir)
}

const validMatrix = `
matrix "py" {
  axis "python" { values = ["3.9", "3.10"] }
  axis "arch"   { values = ["x64"] }

  default {
    python = "3.10"
    arch   = "x64"
  }
}
`

func TestLoad_ValidMatrix(t *testing.T) {
	model, err := loadString(t, validMatrix)
	require.NoError(t, err)
	require.Len(t, model.Specs, 1)

	spec := model.Specs[0]
	assert.Equal(t, "py", spec.Name)

	axes := spec.Axes.Axes()
	require.Len(t, axes, 2)
	assert.Equal(t, "python", axes[0].Name)
	assert.Equal(t, "arch", axes[1].Name)
	require.Len(t, axes[0].Values, 2)
	assert.Equal(t, "3.9", axes[0].Values[0].AsString())
	assert.Equal(t, "3.10", axes[0].Values[1].AsString())

	require.True(t, spec.HasDefault)
	v, ok := spec.Default.Value("python")
	require.True(t, ok)
	assert.Equal(t, "3.10", v.AsString())
}

func TestLoad_NumberValues(t *testing.T) {
	model, err := loadString(t, `
matrix "abi" {
  axis "level" { values = [3, 4] }
}
`)
	require.NoError(t, err)
	spec := model.Specs[0]
	assert.False(t, spec.HasDefault)

	var names []string
	for c := range spec.Axes.Combinations() {
		names = append(names, matrix.DeriveName(spec.Name, c))
	}
	assert.Equal(t, []string{"abi-level3", "abi-level4"}, names)
}

func TestLoad_MultipleFilesAggregate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(validMatrix), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`
matrix "cpp" {
  axis "std" { values = ["17", "20"] }
}
`), 0o600))

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, model.Specs, 2)
	assert.NotNil(t, model.Spec("py"))
	assert.NotNil(t, model.Spec("cpp"))
}

func TestLoad_DuplicateMatrixName(t *testing.T) {
	_, err := loadString(t, validMatrix+validMatrix)
	require.ErrorIs(t, err, config.ErrDuplicateMatrix)
}

func TestLoad_ParseError(t *testing.T) {
	_, err := loadString(t, `matrix "py" {`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_ConfigurationErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		errIs   error
		errText string
	}{
		{
			name: "duplicate axis",
			src: `
matrix "py" {
  axis "arch" { values = ["x64"] }
  axis "arch" { values = ["arm64"] }
}
`,
			errIs: matrix.ErrDuplicateAxis,
		},
		{
			name: "empty axis values",
			src: `
matrix "py" {
  axis "arch" { values = [] }
}
`,
			errIs: matrix.ErrEmptyAxis,
		},
		{
			name: "non-scalar axis value",
			src: `
matrix "py" {
  axis "arch" { values = [true] }
}
`,
			errText: "unsupported value type",
		},
		{
			name: "default missing axis",
			src: `
matrix "py" {
  axis "python" { values = ["3.9"] }
  axis "arch"   { values = ["x64"] }
  default {
    python = "3.9"
  }
}
`,
			errText: `missing axis "arch"`,
		},
		{
			name: "default references unknown axis",
			src: `
matrix "py" {
  axis "python" { values = ["3.9"] }
  default {
    python = "3.9"
    libc   = "musl"
  }
}
`,
			errText: `unknown axis "libc"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadString(t, tc.src)
			require.Error(t, err)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			}
			if tc.errText != "" {
				assert.Contains(t, err.Error(), tc.errText)
			}
		})
	}
}

func TestLoad_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not hcl"), 0o600))

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, model.Specs)
}
