// Package consolidation models packages held in the warehouse for a client
// suite: the Consolidation aggregate and its Held → Released status.
//
// Consolidations supply the weight, item count and elapsed days that the
// storage policy engine turns into fees and warnings.
package consolidation
