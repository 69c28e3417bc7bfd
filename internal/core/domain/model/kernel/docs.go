// Package kernel provides the value objects shared by every aggregate of the
// parcel service.
//
// The package includes:
//   - UUID: the identifier of parcels, history entries and directory entities
//   - Weight: a parcel weight in kilograms, exact decimal, 0.01 to 999.99
//
// Both are immutable, reject their zero value in Validate, and are safe for
// concurrent use.
package kernel
