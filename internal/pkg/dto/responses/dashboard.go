package responses

import (
	"github.com/goccy/go-json"
)

// DashboardCounts is the only admin dashboard payload the service interprets.
type DashboardCounts struct {
	Doctors         int `json:"doctors"`
	Patients        int `json:"patients"`
	Appointments    int `json:"appointments"`
	Specializations int `json:"specializations"`
}

// AdminDashboard bundles the six pre-aggregated admin views. Everything except
// the counts stays opaque, the charts are rendered client side.
type AdminDashboard struct {
	Counts           DashboardCounts `json:"counts"`
	Revenue          json.RawMessage `json:"revenue"`
	Stats            json.RawMessage `json:"stats"`
	Upcoming         json.RawMessage `json:"upcoming"`
	Weekly           json.RawMessage `json:"weekly"`
	RecentActivities json.RawMessage `json:"recentActivities"`
}

type DoctorDashboard struct {
	TotalPatients  int                  `json:"totalPatients"`
	Consultations  int                  `json:"consultations"`
	Chart          []GenderChartEntry   `json:"chart"`
	Doctor         DashboardDoctor      `json:"doctor"`
	Colleagues     []DashboardColleague `json:"colleagues"`
	RecentPatients []RecentPatient      `json:"recentPatients"`
}

type GenderChartEntry struct {
	Month  string `json:"month"`
	Male   int    `json:"male"`
	Female int    `json:"female"`
}

type DashboardDoctor struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	PhotoURL       string  `json:"photoUrl"`
	Rating         float64 `json:"rating"`
	RatingCount    int     `json:"ratingCount"`
}

type DashboardColleague struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	PhotoURL       string  `json:"photoUrl"`
	Rating         float64 `json:"rating"`
}

type RecentPatient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
	Date string `json:"date"`
}
