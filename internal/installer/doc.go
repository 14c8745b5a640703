// Package installer runs the JavaScript package manager (yarn by default,
// npm or pnpm on request) that installs a scaffolded project's dependencies.
// The child process inherits the caller's standard streams and blocks until
// it exits; a version probe backs the doctor command.
package installer
