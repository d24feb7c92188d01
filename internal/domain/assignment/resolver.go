// Package assignment computes officer eligibility for report assignment.
package assignment

import (
	"errors"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
)

var (
	// ErrMissingLocation blocks auto-assignment of reports without
	// coordinates before any backend call is made.
	ErrMissingLocation = errors.New("report has no location for auto-assignment")
)

// EligibleOfficers returns the officers that may be assigned to a report.
//
// The report's station name is resolved against the station roster. When
// the station is found, only officers attached to it are eligible; a
// matched station with no officers yields an empty list. When no station
// matches the name at all, the full roster is returned so assignment stays
// possible for reports with unrecognized station names; the caller should
// treat a pick from that fallback as a cross-station assignment.
func EligibleOfficers(stationName string, stations []crimeapi.Station, authorities []crimeapi.Authority) []crimeapi.Authority {
	officers := make([]crimeapi.Authority, 0, len(authorities))
	for _, a := range authorities {
		if a.Role == "POLICE" {
			officers = append(officers, a)
		}
	}

	station, ok := findStation(stationName, stations)
	if !ok {
		return officers
	}

	eligible := make([]crimeapi.Authority, 0)
	for _, officer := range officers {
		if officer.StationID != nil && *officer.StationID == station.ID {
			eligible = append(eligible, officer)
		}
	}
	return eligible
}

// IsEligible reports whether an officer is in the eligible subset for a
// station name. Used to flag soft station-mismatch warnings on manual
// assignment.
func IsEligible(officerID int64, stationName string, stations []crimeapi.Station, officers []crimeapi.Authority) bool {
	for _, officer := range EligibleOfficers(stationName, stations, officers) {
		if officer.ID == officerID {
			return true
		}
	}
	return false
}

// CanAutoAssign gates the auto-assignment precondition: both coordinates
// must be present. Nearest-officer selection itself is the backend's job.
func CanAutoAssign(latitude, longitude *float64) error {
	if latitude == nil || longitude == nil {
		return ErrMissingLocation
	}
	return nil
}

func findStation(name string, stations []crimeapi.Station) (crimeapi.Station, bool) {
	for _, station := range stations {
		if station.Name == name {
			return station, true
		}
	}
	return crimeapi.Station{}, false
}
