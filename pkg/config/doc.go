// Package config holds the wincross configuration model and the engine that
// turns it into one effective configuration.
//
// Three layers are involved:
//
//   - ProjectConfig: the author-maintained wincross.toml, optionally profiled.
//     Loaded with koanf, legacy nested tables lifted to the flat schema, then
//     decoded with mapstructure.
//   - BuildConfig: the machine-local build_config.json written by `wincross init`.
//     It carries everything machine specific such as toolchain host paths and
//     vcpkg host directories.
//   - Effective: the merged, validated and placeholder-expanded view produced
//     by Resolve. It is recomputed for every command and never persisted.
//
// Merge precedence is fixed: build config wins on scalars, lists concatenate
// project then build, env maps overlay key by key and toolchains overlay per
// entry.
package config
