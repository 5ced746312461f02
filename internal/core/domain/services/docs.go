// Package services provides the pricing engines of the forwarding platform.
//
// The package includes:
//   - RatingEngine: shipping rates, insurance premiums and carrier selection
//   - StoragePolicyEngine: storage fees with an itemized breakdown, and the
//     warning/free-period date helpers
//
// Both engines are stateless. They read only the carrier, policy and usage
// values passed to each call, so callers load one configuration snapshot per
// request and hand it in; a calculation never observes a configuration change
// halfway through.
package services
