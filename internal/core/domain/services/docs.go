// Package services provides domain services: business computations that span
// several aggregates and belong to none of them.
//
// The package includes:
//   - StatisticsCalculator: global, per delivery person and per zone rollups
//     computed from a parcel set
package services
