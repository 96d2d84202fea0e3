// Package kernel provides core domain primitives shared by the order and
// driver models of the gas delivery system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for geographic delivery destinations
//   - Actor and Role: the authenticated caller identity supplied by the
//     identity provider, used for authorization of lifecycle transitions
//
// All primitives are immutable value objects. They validate their inputs at
// construction time so that the domain model never holds an invalid identifier,
// coordinate, or role.
package kernel
