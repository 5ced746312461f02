// Package storagepolicy models the versioned storage rule set: free period,
// weight-tiered and per-item daily rates, the flat-rate override, surcharge
// switches, warning lead time and the billable-day cap.
package storagepolicy
