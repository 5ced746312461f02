// Package kernel provides the shared primitives of the pricing domain.
//
// The package includes:
//   - UUID: a validated identifier for carriers, services, zones, storage
//     policies and consolidations
//   - Day, AddDays, CeilDays: calendar arithmetic for storage periods
//   - NonNegative: the zero floor applied to every computed charge
package kernel
