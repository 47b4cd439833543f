// Package file provides the TOML-backed implementation of the ConfigStore
// driven port. Configuration lives in ~/.ansera/config.toml by default and
// nested tables are flattened into dot-notation keys, so the engine tunables
// are addressed as engine.relevance_floor, engine.mmr_lambda and so on.
package file
