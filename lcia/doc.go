// Package lcia assembles characterization matrices: one row per impact
// assessment method, one column per biosphere flow.
//
// Factor tables are an external concern. Build consumes them through the
// FactorLookup interface, keyed by the flow basis (name, category,
// compartment); the fourth component of a flow key (usually the unit) is
// ignored for matching. StaticLookup and LoadYAML cover in-memory and
// file-backed tables.
//
// The join is a hash lookup per (method, flow): O(methods × flows) map reads,
// never a scan of the factor table. A flow with no factor in a method stays an
// implicit zero. WithAudit logs every written factor sorted by (method, flow).
package lcia
