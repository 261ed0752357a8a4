// Package writers turns computed terms into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text, JSON, JSONL).
//   • The fib package stays numeric-only; appcore stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
