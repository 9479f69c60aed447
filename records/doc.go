// Package records parses the flat tables an LCA database export is made of
// into typed, in-memory structures.
//
// Two table shapes are supported:
//
//   - Index tables: four descriptive string keys followed by an integer
//     matrix index ("wind;electricity;DE;kWh;42"). ReadIndices returns an
//     IndexMap; duplicate keys overwrite earlier ones.
//
//   - Exchange tables: consumer index, producer index, value, six uncertainty
//     columns and (technosphere only) a sign flag. ReadExchanges returns a
//     Bundle, a structure-of-arrays view whose Data, Indices, Sign and
//     Distributions share one ordering.
//
// Indices are stored as (Row=producer, Col=consumer), i.e. the first two
// file columns are swapped on read. Every consumer of a Bundle indexes by
// that pair.
//
// Any malformed row aborts the read with ErrMalformedRow; there is no
// partial-row recovery.
//
// LoadIndices, LoadExchanges, LoadMatrixArrays and LoadIndexMaps read the same
// tables through github.com/viant/afs, so a directory may be local or remote.
package records
