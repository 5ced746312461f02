// Package errs holds the error vocabulary shared by the domain, the use cases
// and the adapters of the forwarding pricing service.
//
// Every typed error unwraps to one sentinel, so callers classify with
// errors.Is and never inspect messages:
//
//	ErrValueIsRequired      a mandatory value is missing (a carrier code, a suite number)
//	ErrValueIsInvalid       a value breaks a business rule (a negative carrier rate)
//	ErrValueIsOutOfRange    a value is outside [Min, Max] (an insurance rate above 100%)
//	ErrObjectNotFound       a lookup by identifier matched nothing
//	ErrObjectAlreadyExists  a write collides with a unique key (a taken carrier code)
//	ErrVersionIsInvalid     an aggregate version is unusable (a stale policy version)
//
// The HTTP adapter turns these into 400, 404 and 409 responses. Constructors
// come in pairs, with and without a Cause; the cause is only reported in the
// message.
package errs
