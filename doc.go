// Package pgtypemap selects value coders for the PostgreSQL wire protocol.
/*
pgtypemap sits between an application's Go values and a PostgreSQL driver's
text and binary encodings. For each query parameter, result column, or COPY
field it picks a Coder without the caller pre-declaring column types.

The TypeMap interface is the dispatch contract. A TypeMap is configured once
and reused across queries; per execution it is fitted to the concrete
parameter list, result descriptor, or copy stream, yielding an ephemeral
fitted dispatcher that is invoked per value inside the driver's transmit and
receive loops.

Four dispatch strategies implement TypeMap:

ByKind dispatches on the representation kind of each value (integer, string,
slice, struct, ...) and is used for query parameters and COPY rows, where
values of arbitrary kinds mix within one call.

ByType dispatches on the declared Go type of each value, with registered
interface types acting as a fallback chain.

ByColumn is a fixed-width positional table for use when the query or result
shape is known up front.

ByOID dispatches result columns on their data type oid and wire format,
precomputing a per-column coder table from the result descriptor.

AllStrings is the zero-configuration map: everything falls back to the
caller's default string conversion.

Any strategy slot may hold a static Coder or a ResolverFunc that computes the
Coder per value at resolution time.

A small set of built-in coders (text, bool, int2/int4/int8, float8, bytea,
uuid, timestamp) covers common types; numeric coders backed by
github.com/shopspring/decimal and github.com/cockroachdb/apd live under ext/.

TypeMaps perform no internal locking. Configure a map, then share it
read-only; Coders are immutable and safe for concurrent use.
*/
package pgtypemap
