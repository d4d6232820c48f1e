// Package form interprets a frozen prompt layout plus externally supplied
// data as a live, validated form session. It owns field addressing (logical
// componentId keys with structural-id fallback), default-value resolution,
// radio-group linkage, table selection sub-state, and the always-fresh
// validation summary attached to every change notification.
//
// The package is interpreter-only: it never persists anything and never
// talks to the network. Hosts receive per-field change events and merge them
// into whatever aggregate they maintain.
package form
