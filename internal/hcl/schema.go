package hcl

import "github.com/hashicorp/hcl/v2"

// matrixFile is the top-level structure of a matrix definition file for
// decoding.
type matrixFile struct {
	Matrices []*matrixBlock `hcl:"matrix,block"`
}

// matrixBlock is one `matrix "name" { ... }` block.
type matrixBlock struct {
	Name    string        `hcl:"name,label"`
	Axes    []*axisBlock  `hcl:"axis,block"`
	Default *defaultBlock `hcl:"default,block"`
}

// axisBlock declares one axis and its ordered values.
type axisBlock struct {
	Name   string         `hcl:"name,label"`
	Values hcl.Expression `hcl:"values"`
}

// defaultBlock carries the default combination as free-form attributes, one
// per axis.
type defaultBlock struct {
	Body hcl.Body `hcl:",remain"`
}
