/*
Package config defines the unified, format-agnostic model of a user's
matrix definitions, and the Loader interface that format-specific front
ends (HCL, YAML) implement to produce it.

Keeping the model independent of any syntax lets the rest of the
application operate on one representation regardless of how many files, in
how many formats, the definitions were spread across.
*/
package config
