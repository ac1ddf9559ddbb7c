// Package configs handles the optional .logshift.toml project config.
//
// The config lives at the root of the directory tree being rewritten and
// tunes the rewrite rules: target extension, default category symbol,
// severity level, extra ignored directories, and per-tag category
// overrides. Every field is optional; an absent file means the built-in
// defaults, which reproduce the tool's stock behavior exactly.
//
// TOML serialization goes through the SaveTOML and LoadTOML helpers so
// the encoding choice stays in one place.
package configs
