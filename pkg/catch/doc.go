// Package catch turns a failing operation into a value and routes the
// captured error to a handler chosen by its exact runtime type.
//
// Highlights:
// - Execute/ExecuteContext: run an operation once and capture its error (or panic)
// - Try: same as Execute for operations that also produce a value
// - On/OnErr/ForType: build typed handlers; the target type is fixed at construction
// - CatchWith/Catch: dispatch to the first handler whose type equals the error's type
// - Inspect: pass the raw error (or its absence) to a callback unconditionally
//
// Matching is exact: a handler registered for a type does not receive errors
// of a type that embeds or wraps it. When no handler matches, dispatch returns
// an *UnhandledError carrying the captured error.
package catch
