package report

import (
	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
)

// Merge reconciles a relational report record with the blockchain ledger.
// The ledger entry matching the record's report ID is authoritative for the
// originally submitted content (description, translated text, address,
// city, state, coordinates, submission time); the relational record is
// authoritative for everything else, in particular all status and
// assignment fields. Merge is pure: it performs no I/O.
//
// When several ledger entries carry the same report ID the one with the
// latest submission timestamp wins; entries without a timestamp lose to
// ones that have it, and ties keep the earliest entry in ledger order.
func Merge(record crimeapi.ReportRecord, entries []crimeapi.LedgerEntry) (*Report, error) {
	if record.ReportID == "" {
		return nil, ErrInvalidRecord
	}

	merged := &Report{
		ReportID:          record.ReportID,
		CrimeTypeID:       record.CrimeTypeID,
		CategoryID:        record.CategoryID,
		Description:       record.Description,
		TranslatedText:    record.TranslatedText,
		MLStatus:          MLStatus(record.MLStatus),
		AdminStatus:       AdminStatus(record.AdminStatus),
		PoliceStatus:      PoliceStatus(record.PoliceStatus),
		Urgency:           Urgency(record.Urgency),
		Address:           record.Address,
		City:              record.City,
		State:             record.State,
		PoliceStation:     record.PoliceStation,
		Latitude:          record.Latitude,
		Longitude:         record.Longitude,
		AssignedOfficerID: record.AssignedOfficerID,
		RejectionReason:   record.RejectionReason,
		PoliceFeedback:    record.PoliceFeedback,
		PoliceActionProof: record.PoliceActionProof,
		SubmittedAt:       record.SubmittedAt,
	}

	entry, ok := matchLedgerEntry(record.ReportID, entries)
	if !ok {
		return merged, nil
	}

	merged.Description = entry.Description
	merged.TranslatedText = entry.TranslatedText
	merged.Address = entry.Address
	merged.City = entry.City
	merged.State = entry.State
	merged.Latitude = entry.Latitude
	merged.Longitude = entry.Longitude
	merged.SubmittedAt = entry.SubmittedAt
	merged.LedgerVerified = true

	return merged, nil
}

// matchLedgerEntry picks the ledger entry for a report ID, tie-breaking
// duplicates by latest submission timestamp.
func matchLedgerEntry(reportID string, entries []crimeapi.LedgerEntry) (crimeapi.LedgerData, bool) {
	var best crimeapi.LedgerData
	found := false

	for _, entry := range entries {
		if entry.Data.ReportID != reportID {
			continue
		}
		if !found || entry.Data.SubmittedAt.After(best.SubmittedAt) {
			best = entry.Data
			found = true
		}
	}

	return best, found
}
