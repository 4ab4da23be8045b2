// Package tracking derives a pseudo courier status from a tracking
// number. There is no courier backend; the status is a deterministic
// function of the input so repeated lookups agree. Keep it behind this
// package boundary so a real courier client can replace it later.
package tracking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTrackingNumber is returned for blank input
var ErrEmptyTrackingNumber = errors.New("please enter a valid tracking number")

var statusTemplates = []func(courier, city string) string{
	func(courier, _ string) string {
		return fmt.Sprintf("Shipment information received by %s.", courier)
	},
	func(_, _ string) string {
		return "Package departed from our facility."
	},
	func(_, city string) string {
		return fmt.Sprintf("In transit to %s sorting center.", city)
	},
	func(courier, city string) string {
		return fmt.Sprintf("Package arrived at %s hub in %s.", courier, city)
	},
	func(_, _ string) string {
		return "Out for delivery. Estimated arrival: Today."
	},
	func(_, _ string) string {
		return "Delivery attempt made. Will re-attempt tomorrow."
	},
}

// Status maps a tracking number and the order's courier and destination
// city to one of the canned status phrases. The same tracking number
// always yields the same phrase. Blank input yields
// ErrEmptyTrackingNumber instead of a phrase.
func Status(trackingNumber, courier, city string) (string, error) {
	if strings.TrimSpace(trackingNumber) == "" {
		return "", ErrEmptyTrackingNumber
	}
	sum := 0
	for _, r := range trackingNumber {
		sum += int(r)
	}
	return statusTemplates[sum%len(statusTemplates)](courier, city), nil
}
