package matrix

import "errors"

// Configuration errors. Each one indicates a bug in the matrix definition
// rather than a runtime condition; none of them are retried.
var (
	// ErrDuplicateAxis reports two axes declared under the same name.
	ErrDuplicateAxis = errors.New("duplicate axis name")

	// ErrEmptyAxis reports an axis with no values. Such an axis silently
	// empties the whole product.
	ErrEmptyAxis = errors.New("axis has no values")

	// ErrDefaultNotFound reports a default combination that is not a member
	// of the generated product.
	ErrDefaultNotFound = errors.New("default combination not found in matrix")

	// ErrNotCombination reports a function wrapper that replaced the
	// identity build result with something other than a Combination during
	// PassedVersions.
	ErrNotCombination = errors.New("wrapped build result is not a combination")
)
