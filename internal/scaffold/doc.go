// Package scaffold creates a new React + webpack project directory. It
// validates the project name, refuses to touch an existing path, writes the
// embedded template set (package.json, .babelrc, webpack.config.js,
// public/index.html, src/index.jsx, src/App.jsx, src/index.css) and then runs
// the package manager to install dependencies.
//
// Failures are returned as one of the error types in errors.go; the caller
// decides how to report them and which exit code to use.
package scaffold
