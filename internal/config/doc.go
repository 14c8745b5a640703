// Package config manages user-level settings stored at
// ~/.react-webpack-scaffold/config.yaml. Values can also come from RWS_*
// environment variables or bound command-line flags; the package manager used
// for dependency installation is the main setting.
package config
