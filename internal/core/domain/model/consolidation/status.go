package consolidation

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Status is the storage lifecycle state of a consolidation.
//
//	Held ──> Released
//
// Storage accrues while Held; Released is final.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	// Held means the packages sit in the warehouse and storage days accrue.
	Held
	// Released means the consolidation left the warehouse.
	Released
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Held:     "Held",
		Released: "Released",
	}
}

// Validate rejects Unknown and out-of-range values read from storage or the API.
func (s Status) Validate() error {
	if s != Held && s != Released {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Release transitions Held to Released.
func (s Status) Release() (Status, error) {
	if s != Held {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}
	return Released, nil
}
