/*
Package app wires the generator together: it configures the logger, loads
every matrix definition through a config.Loader, expands each matrix into
its named targets with the matrix builder, and writes the result in the
requested output format.

Fatal configuration problems during construction panic; the cmd entrypoint
recovers them into a clean process exit.
*/
package app
