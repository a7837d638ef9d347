package models

// Descriptor maps an enum value to its display label and color token. Each
// enum gets exactly one table, defined here and consumed everywhere a list or
// detail view needs it.
type Descriptor struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var VehicleStatusDescriptors = map[string]Descriptor{
	VehicleStatusActive:       {Label: "Active", Color: "green"},
	VehicleStatusInService:    {Label: "In Service", Color: "orange"},
	VehicleStatusOutOfService: {Label: "Out of Service", Color: "red"},
	VehicleStatusSold:         {Label: "Sold", Color: "gray"},
}

var DriverStatusDescriptors = map[string]Descriptor{
	DriverStatusActive:    {Label: "Active", Color: "green"},
	DriverStatusInactive:  {Label: "Inactive", Color: "gray"},
	DriverStatusSuspended: {Label: "Suspended", Color: "red"},
}

var MaintenanceStatusDescriptors = map[string]Descriptor{
	MaintenanceStatusScheduled:  {Label: "Scheduled", Color: "blue"},
	MaintenanceStatusInProgress: {Label: "In Progress", Color: "orange"},
	MaintenanceStatusCompleted:  {Label: "Completed", Color: "green"},
	MaintenanceStatusCancelled:  {Label: "Cancelled", Color: "gray"},
}

var InsuranceStatusDescriptors = map[string]Descriptor{
	InsuranceStatusActive:    {Label: "Active", Color: "green"},
	InsuranceStatusExpired:   {Label: "Expired", Color: "red"},
	InsuranceStatusCancelled: {Label: "Cancelled", Color: "gray"},
}

var AlertPriorityDescriptors = map[string]Descriptor{
	PriorityHigh:   {Label: "High", Color: "red"},
	PriorityMedium: {Label: "Medium", Color: "orange"},
	PriorityLow:    {Label: "Low", Color: "blue"},
}

// DescriptorFor looks up a value in a table, falling back to the raw value
// with a neutral color so unknown values still render.
func DescriptorFor(table map[string]Descriptor, value string) Descriptor {
	if d, ok := table[value]; ok {
		return d
	}
	return Descriptor{Label: value, Color: "gray"}
}
