/*
Package matrix expands independent version axes into a named build target
per combination.

An AxisSet declares the axes (for example interpreter version and CPU
architecture) with their permissible values in order. Combinations
enumerates the Cartesian product of the axes; DeriveName assigns every
combination a stable, human-readable identifier suitable for mapping keys
and CI job names; BuildMatrix applies a caller-supplied build function to
each combination and collects the artifacts under their derived names.
BuildMatrixWithDefault additionally exposes one designated combination's
artifact under the fixed "default" alias.

Builder bundles an axis set and its default combination with a composable
transformation pipeline. MapVersions attaches transforms applied to each
combination before it reaches the build function, for example resolving an
abstract version tuple into concrete package handles; Map wraps the build
function itself, for example with the Traced logging wrapper. Builders are
immutable values, so chaining never affects earlier builders, and the
combinatorics are computed once per terminal call.

Terminal calls invoke the build function sequentially, exactly once per
combination, in product enumeration order. Combinations share no mutable
state, so an embedding system is free to fan expansion out across workers;
this package itself never schedules, retries, or time-boxes builds, and the
first build error aborts the remaining matrix.
*/
package matrix
