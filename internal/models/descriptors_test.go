package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorForKnownValue(t *testing.T) {
	d := DescriptorFor(VehicleStatusDescriptors, VehicleStatusOutOfService)
	assert.Equal(t, "Out of Service", d.Label)
	assert.Equal(t, "red", d.Color)
}

func TestDescriptorForUnknownValueFallsBack(t *testing.T) {
	d := DescriptorFor(AlertPriorityDescriptors, "critical")
	assert.Equal(t, "critical", d.Label)
	assert.Equal(t, "gray", d.Color)
}

func TestEveryEnumValueHasDescriptor(t *testing.T) {
	cases := map[string]struct {
		table  map[string]Descriptor
		values []string
	}{
		"vehicle status": {
			VehicleStatusDescriptors,
			[]string{VehicleStatusActive, VehicleStatusInService, VehicleStatusOutOfService, VehicleStatusSold},
		},
		"driver status": {
			DriverStatusDescriptors,
			[]string{DriverStatusActive, DriverStatusInactive, DriverStatusSuspended},
		},
		"maintenance status": {
			MaintenanceStatusDescriptors,
			[]string{MaintenanceStatusScheduled, MaintenanceStatusInProgress, MaintenanceStatusCompleted, MaintenanceStatusCancelled},
		},
		"insurance status": {
			InsuranceStatusDescriptors,
			[]string{InsuranceStatusActive, InsuranceStatusExpired, InsuranceStatusCancelled},
		},
		"alert priority": {
			AlertPriorityDescriptors,
			[]string{PriorityHigh, PriorityMedium, PriorityLow},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, v := range tc.values {
				_, ok := tc.table[v]
				assert.True(t, ok, "missing descriptor for %q", v)
			}
		})
	}
}
