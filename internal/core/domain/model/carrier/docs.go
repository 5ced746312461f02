// Package carrier models the shipping catalog: Carrier aggregates with their
// rate cards, insurance terms, and the Service and Zone override layers they own.
package carrier
