// Package rewrite converts debug print calls into structured logging calls.
//
// The conversion is a fixed, ordered list of regex substitutions over raw
// file text, not a parse. Three shapes are recognized:
//
//	print("[Network] Request failed")  →  Logger.shared.log("Request failed", category: .network, level: .info)
//	print("Hello world")               →  Logger.shared.log("Hello world", category: .general, level: .info)
//	print("Value is", x)               →  Logger.shared.log("Value is: x", category: .general, level: .info)
//
// The bracket tag is lower-cased into the category symbol, with optional
// per-tag overrides from the project config.
//
// # Known limitations
//
// Being textual, the patterns mis-fire on nested quotes, escaped quotes,
// multi-line calls, string interpolation, and named parameters. That is
// the accepted trade-off of the tool; the rewrite command's closing note
// tells the operator to review the resulting categories by hand.
//
// Rule ordering is a behavioral contract. Each rule runs over the output
// of the previous one, and converted output no longer matches any input
// pattern, which makes the whole transformation idempotent.
package rewrite
