// Package builder provides reusable "functional-options"-style building blocks
// for constructing core.Graph instances. It centralizes common configuration,
// ID schemes, and weight distributions, keeping graph construction DRY,
// testable, and deterministic.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme, weight function, partition prefixes.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Constructors:
//     – CompleteBipartite(n1,n2): builds K_{n1,n2} with deterministic "L"/"R" IDs.
//   - Shared constants:
//     – DefaultEdgeWeight, MaxPartition.
//     – MethodCompleteBipartite: the constructor name used as error context.
//
// Guarantees:
//
//   - Idempotent configuration: re-running the same builder on g will not duplicate
//     vertices or edges.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Runtime errors for invalid build parameters wrap sentinel errors with
//     fmt.Errorf, prefixed by the constructor name for easy filtering.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
