package booking_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []booking.Status{
			booking.Pending,
			booking.Confirmed,
			booking.InProgress,
			booking.Completed,
			booking.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range statuses", func(t *testing.T) {
		invalidStatuses := []booking.Status{
			booking.Unknown,
			booking.Status(-1),
			booking.Status(6),
			booking.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   booking.Status
			expected string
		}{
			{booking.Pending, "Pending"},
			{booking.Confirmed, "Confirmed"},
			{booking.InProgress, "InProgress"},
			{booking.Completed, "Completed"},
			{booking.Cancelled, "Cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "Unknown", booking.Unknown.String())
		assert.Equal(t, "Unknown", booking.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status name", func(t *testing.T) {
		names := map[string]booking.Status{
			"Pending":    booking.Pending,
			"Confirmed":  booking.Confirmed,
			"InProgress": booking.InProgress,
			"Completed":  booking.Completed,
			"Cancelled":  booking.Cancelled,
		}

		for name, expected := range names {
			status, err := booking.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "pending", "Unknown", "Done"} {
			status, err := booking.StatusFromString(name)

			require.Error(t, err)
			assert.Equal(t, booking.Unknown, status)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, booking.Completed.IsTerminal())
	assert.True(t, booking.Cancelled.IsTerminal())
	assert.False(t, booking.Pending.IsTerminal())
	assert.False(t, booking.Confirmed.IsTerminal())
	assert.False(t, booking.InProgress.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow the happy path for the provider", func(t *testing.T) {
		status := booking.Pending

		status, err := status.TransitionTo(booking.Confirmed, kernel.RoleProvider)
		require.NoError(t, err)
		assert.Equal(t, booking.Confirmed, status)

		status, err = status.TransitionTo(booking.InProgress, kernel.RoleProvider)
		require.NoError(t, err)
		assert.Equal(t, booking.InProgress, status)

		status, err = status.TransitionTo(booking.Completed, kernel.RoleProvider)
		require.NoError(t, err)
		assert.Equal(t, booking.Completed, status)
	})

	t.Run("should allow either party to cancel before the service starts", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleCustomer, kernel.RoleProvider} {
			for _, from := range []booking.Status{booking.Pending, booking.Confirmed} {
				status, err := from.TransitionTo(booking.Cancelled, role)

				require.NoError(t, err)
				assert.Equal(t, booking.Cancelled, status)
			}
		}
	})

	t.Run("should forbid the customer from confirming", func(t *testing.T) {
		status, err := booking.Pending.TransitionTo(booking.Confirmed, kernel.RoleCustomer)

		require.Error(t, err)
		assert.Equal(t, booking.Unknown, status)
		assert.IsType(t, &errs.TransitionForbiddenError{}, err)
		assert.Contains(t, err.Error(), "Pending -> Confirmed")
		assert.Contains(t, err.Error(), "customer")
	})

	t.Run("should forbid cancelling a booking in progress", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleCustomer, kernel.RoleProvider, kernel.RoleAdmin} {
			status, err := booking.InProgress.TransitionTo(booking.Cancelled, role)

			require.Error(t, err)
			assert.Equal(t, booking.Unknown, status)
			assert.IsType(t, &errs.TransitionForbiddenError{}, err)
		}
	})

	t.Run("should forbid skipping statuses", func(t *testing.T) {
		status, err := booking.Pending.TransitionTo(booking.Completed, kernel.RoleProvider)

		require.Error(t, err)
		assert.Equal(t, booking.Unknown, status)
		assert.IsType(t, &errs.TransitionForbiddenError{}, err)
	})

	t.Run("should forbid any transition out of a terminal status", func(t *testing.T) {
		terminal := []booking.Status{booking.Completed, booking.Cancelled}
		targets := []booking.Status{booking.Pending, booking.Confirmed, booking.InProgress, booking.Cancelled}

		for _, from := range terminal {
			for _, target := range targets {
				if from == target {
					continue
				}
				_, err := from.TransitionTo(target, kernel.RoleAdmin)
				require.Error(t, err)
			}
		}
	})

	t.Run("should reject an invalid role", func(t *testing.T) {
		_, err := booking.Pending.TransitionTo(booking.Confirmed, kernel.Role("intruder"))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject an invalid target status", func(t *testing.T) {
		_, err := booking.Pending.TransitionTo(booking.Unknown, kernel.RoleProvider)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should not modify the receiver on failed transitions", func(t *testing.T) {
		original := booking.Pending

		_, err := original.TransitionTo(booking.Completed, kernel.RoleProvider)

		require.Error(t, err)
		assert.Equal(t, booking.Pending, original)
	})
}
