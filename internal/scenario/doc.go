// Package scenario describes small try/catch exercises (which error an
// operation raises, which handlers are registered, how the outcome is
// dispatched), runs them against package catch, and reports what happened.
package scenario
