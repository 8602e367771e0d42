package resources

import (
	"finddoctor-service/internal/pkg/constvars"
)

// Descriptor is everything the generic resource endpoints need to know about
// one managed entity collection. Adding an entity means adding a row here, not
// a new service.
type Descriptor struct {
	Name           string
	Path           string
	FilterParam    string
	RequiredFields []string
	ReadOnly       bool
}

var registry = map[string]Descriptor{
	constvars.ResourceDoctors: {
		Name:           constvars.ResourceDoctors,
		Path:           "/api/doctors",
		FilterParam:    "specializationId",
		RequiredFields: []string{"name", "specializationId", "hospitalId"},
	},
	constvars.ResourcePatients: {
		Name:           constvars.ResourcePatients,
		Path:           constvars.CoreAPIPathPatients,
		RequiredFields: []string{"firstname", "lastname"},
	},
	constvars.ResourceHospitals: {
		Name:           constvars.ResourceHospitals,
		Path:           "/api/hospitals",
		RequiredFields: []string{"name", "address"},
	},
	constvars.ResourceSpecializations: {
		Name:           constvars.ResourceSpecializations,
		Path:           "/api/specializations",
		RequiredFields: []string{"name"},
	},
	constvars.ResourceUsers: {
		Name:           constvars.ResourceUsers,
		Path:           "/api/users",
		FilterParam:    "role",
		RequiredFields: []string{"name", "email"},
	},
	constvars.ResourceFeedbacks: {
		Name:           constvars.ResourceFeedbacks,
		Path:           "/api/feedbacks",
		RequiredFields: []string{"appointmentId", "rating"},
	},
	constvars.ResourceAppointmentTypes: {
		Name:           constvars.ResourceAppointmentTypes,
		Path:           "/api/appointment-types",
		RequiredFields: []string{"name", "price", "duration"},
	},
	constvars.ResourceRoles: {
		Name:           constvars.ResourceRoles,
		Path:           "/api/roles",
		RequiredFields: []string{"name"},
	},
	constvars.ResourcePayments: {
		Name:        constvars.ResourcePayments,
		Path:        "/api/payments",
		FilterParam: "paymentStatus",
		ReadOnly:    true,
	},
}

func Lookup(resource string) (Descriptor, bool) {
	descriptor, ok := registry[resource]
	return descriptor, ok
}
