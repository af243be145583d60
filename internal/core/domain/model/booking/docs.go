// Package booking contains the Booking aggregate: a time-windowed service
// reservation against a provider's calendar, with a role-checked status
// lifecycle and a once-only post-completion rating.
package booking
