/*
Package hcl loads matrix definitions from HCL files into the
format-agnostic config model.

A definition looks like:

	matrix "py" {
	  axis "python" { values = ["3.9", "3.10"] }
	  axis "arch"   { values = ["x64"] }

	  default {
	    python = "3.10"
	    arch   = "x64"
	  }
	}

Axis block order is declaration order and drives both product enumeration
and derived target names. Values must be literal strings or numbers. The
default block is optional; when present it must assign exactly the declared
axes.
*/
package hcl
