// Package orchestrator coordinates the pipeline from layout document to
// rendered form output.
package orchestrator
