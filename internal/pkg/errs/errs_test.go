package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sentinels = []error{
	errs.ErrObjectNotFound,
	errs.ErrObjectAlreadyExists,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
	errs.ErrVersionIsInvalid,
}

func TestErrors_MessageAndClass(t *testing.T) {
	duplicateKey := errors.New(`pq: duplicate key value violates unique constraint "idx_carriers_code"`)

	tests := []struct {
		name        string
		err         error
		wantClass   error
		wantMessage string
	}{
		{
			name:        "unknown carrier",
			err:         errs.NewObjectNotFoundError("carrier", "0b6e1c52-5d0c-4f3a-9b8e-3c1f2a7d9e10"),
			wantClass:   errs.ErrObjectNotFound,
			wantMessage: "object not found: 0b6e1c52-5d0c-4f3a-9b8e-3c1f2a7d9e10",
		},
		{
			name:        "no active storage policy behind a lookup failure",
			err:         errs.NewObjectNotFoundErrorWithCause("storagePolicy", "active", errors.New("record not found")),
			wantClass:   errs.ErrObjectNotFound,
			wantMessage: "object not found: param is: storagePolicy, ID is: active (cause: record not found)",
		},
		{
			name:        "carrier code taken",
			err:         errs.NewObjectAlreadyExistsError("code", "DHL"),
			wantClass:   errs.ErrObjectAlreadyExists,
			wantMessage: "object already exists: code is DHL",
		},
		{
			name:      "policy version taken",
			err:       errs.NewObjectAlreadyExistsErrorWithCause("version", 4, duplicateKey),
			wantClass: errs.ErrObjectAlreadyExists,
			wantMessage: "object already exists: version is 4 " +
				`(cause: pq: duplicate key value violates unique constraint "idx_carriers_code")`,
		},
		{
			name:        "negative weight",
			err:         errs.NewValueIsInvalidErrorWithCause("weightKg", errors.New("-1 is negative")),
			wantClass:   errs.ErrValueIsInvalid,
			wantMessage: "value is invalid: weightKg (cause: -1 is negative)",
		},
		{
			name:        "malformed consolidation id",
			err:         errs.NewValueIsInvalidError("consolidationId"),
			wantClass:   errs.ErrValueIsInvalid,
			wantMessage: "value is invalid: consolidationId",
		},
		{
			name:        "insurance rate above the cap",
			err:         errs.NewValueIsOutOfRangeError("insuranceRate", 150.0, 0, 100),
			wantClass:   errs.ErrValueIsOutOfRange,
			wantMessage: "value is invalid: 150 is insuranceRate, min value is 0, max value is 100",
		},
		{
			name:        "warning days past the free period",
			err:         errs.NewValueIsOutOfRangeErrorWithCause("warningDays", 45, 0, 30, errors.New("exceeds freeDays")),
			wantClass:   errs.ErrValueIsOutOfRange,
			wantMessage: "value is invalid: 45 is warningDays, min value is 0, max value is 30 (cause: exceeds freeDays)",
		},
		{
			name:        "missing suite number",
			err:         errs.NewValueIsRequiredError("suiteNumber"),
			wantClass:   errs.ErrValueIsRequired,
			wantMessage: "value is required: suiteNumber",
		},
		{
			name:        "insurance without declared value",
			err:         errs.NewValueIsRequiredErrorWithCause("declaredValue", errors.New("requiresInsurance is set")),
			wantClass:   errs.ErrValueIsRequired,
			wantMessage: "value is required: declaredValue (cause: requiresInsurance is set)",
		},
		{
			name:        "policy version below one",
			err:         errs.NewVersionIsInvalidError("version", errors.New("0 is less than 1")),
			wantClass:   errs.ErrVersionIsInvalid,
			wantMessage: "version is invalid: version (cause: 0 is less than 1)",
		},
		{
			name:        "policy version without detail",
			err:         errs.NewVersionIsInvalidErrorWithCause("version"),
			wantClass:   errs.ErrVersionIsInvalid,
			wantMessage: "version is invalid: version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.err.Error())
			assert.Equal(t, tt.wantClass, errors.Unwrap(tt.err))

			for _, sentinel := range sentinels {
				assert.Equal(t, sentinel == tt.wantClass, errors.Is(tt.err, sentinel), sentinel.Error())
			}
		})
	}
}

func TestErrors_ClassSurvivesWrappingAndJoin(t *testing.T) {
	// Aggregates join setter errors; handlers wrap them with context.
	joined := errors.Join(
		errs.NewValueIsRequiredError("name"),
		errs.NewValueIsOutOfRangeError("insuranceRate", -1.0, 0, 100),
	)
	wrapped := fmt.Errorf("create carrier: %w", joined)

	require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)
	require.ErrorIs(t, wrapped, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, wrapped, errs.ErrObjectAlreadyExists)

	var rangeErr *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, wrapped, &rangeErr)
	assert.Equal(t, "insuranceRate", rangeErr.ParamName)
	assert.Equal(t, -1.0, rangeErr.Value)
}

func TestErrors_FieldsKeepInputs(t *testing.T) {
	cause := errors.New("connection reset")

	notFound := errs.NewObjectNotFoundErrorWithCause("consolidation", "c-1", cause)
	assert.Equal(t, "consolidation", notFound.ParamName)
	assert.Equal(t, "c-1", notFound.ID)
	assert.Same(t, cause, notFound.Cause)

	exists := errs.NewObjectAlreadyExistsError("code", "UPS")
	assert.Equal(t, "UPS", exists.Value)
	assert.NoError(t, exists.Cause)

	outOfRange := errs.NewValueIsOutOfRangeError("maxDeclaredValue", 10.0, 100.0, 5000.0)
	assert.Equal(t, 100.0, outOfRange.Min)
	assert.Equal(t, 5000.0, outOfRange.Max)
}

func TestErrors_MessagesStayOnOneLine(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("name", "Overnight\nExpress")

	assert.Equal(t, "object already exists: name is Overnight Express", err.Error())
}

func TestSentinelMessages(t *testing.T) {
	want := []string{
		"object not found",
		"object already exists",
		"value is invalid",
		"value is out of range",
		"value is required",
		"version is invalid",
	}

	for i, sentinel := range sentinels {
		assert.Equal(t, want[i], sentinel.Error())
	}
}
