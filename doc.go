// FILE: tomldir/doc.go

// Package tomldir loads a tree-structured configuration document (TOML by
// default, JSON and YAML via file detection) and exposes it as a flat,
// dot/bracket-addressed key-value lookup with typed accessors.
//
// Nested tables flatten with dots, arrays of tables with bracketed
// indices, and primitive arrays stay whole:
//
//	[server]
//	host = "localhost"      -> "server.host"
//	[server.auth]
//	method = "token"        -> "server.auth.method"
//	ports = [80, 443]       -> "ports" (one entry, the full array)
//	[[users]]
//	name = "Alice"          -> "users[0].name"
//
// Features:
//   - Pluggable Store backings: builtin map (default), custom-hash open
//     addressing, insertion-ordered, sorted-by-key
//   - Strict typed getters (GetString, GetInt, GetFloat, GetBool, GetTime)
//   - Whole-document export via Flatten / FlattenInto
//   - Struct decoding of any subtree via Scan
//   - File format auto-detection (TOML, JSON, YAML)
//   - Builder pattern with config file discovery
//
// Quick Start:
//
//	cfg, err := tomldir.LoadFile("config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	host, ok := cfg.GetString("server.host")
//	port, ok := cfg.GetInt("server.port")
//
// Thread Safety:
// A Config is populated once during Load and never mutated afterward, so
// every read operation is safe for concurrent use without locking.
// Shared returns a new handle aliasing the same store; the garbage
// collector manages the shared lifetime.
//
// Store dispatch goes through a small interface value. Callers that need
// to avoid interface dispatch on the write path can populate a concrete
// backing themselves and hand it to LoadWith at the end.
//
// Key ambiguity: flattened keys are built by plain concatenation. A field
// name containing '.' or '[' produces a key indistinguishable from the
// equivalent nested path; no escaping is performed.
package tomldir
