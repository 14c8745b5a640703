// Package manifest models the package.json emitted into a scaffolded project.
// It renders the project name safely into the manifest, validates the result
// against an embedded JSON Schema, and checks that every declared dependency
// range is a valid semver constraint.
package manifest
