// Package template defines the template engine seam renderers depend on.
// The contract mirrors the github.com/goliatone/go-template engine so a
// go-template instance can be injected directly; the gotemplate subpackage
// provides the default pongo2-backed implementation.
package template
