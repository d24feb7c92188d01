package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
)

func ptr[T any](v T) *T { return &v }

func baseRecord() crimeapi.ReportRecord {
	return crimeapi.ReportRecord{
		ReportID:       "RPT-001",
		CrimeTypeID:    3,
		CategoryID:     1,
		Description:    "db description",
		TranslatedText: "db translation",
		MLStatus:       "ACCEPTED",
		AdminStatus:    "ASSIGNED",
		PoliceStatus:   "IN_PROGRESS",
		Urgency:        "HIGH",
		Address:        "12 Db Street",
		City:           "Dbville",
		State:          "DB",
		PoliceStation:  "Central",
		Latitude:       ptr(10.5),
		Longitude:      ptr(20.5),
		SubmittedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func ledgerEntry(reportID string, submittedAt time.Time) crimeapi.LedgerEntry {
	return crimeapi.LedgerEntry{Data: crimeapi.LedgerData{
		ReportID:       reportID,
		Description:    "ledger description",
		TranslatedText: "ledger translation",
		Address:        "99 Chain Avenue",
		City:           "Ledgerton",
		State:          "LG",
		Latitude:       ptr(11.0),
		Longitude:      ptr(21.0),
		SubmittedAt:    submittedAt,
	}}
}

func TestMergeWithoutLedgerEntry(t *testing.T) {
	record := baseRecord()

	merged, err := Merge(record, nil)
	require.NoError(t, err)

	assert.Equal(t, "db description", merged.Description)
	assert.Equal(t, "Dbville", merged.City)
	assert.False(t, merged.LedgerVerified)
	assert.Equal(t, record.SubmittedAt, merged.SubmittedAt)
}

func TestMergeLedgerOverridesContent(t *testing.T) {
	record := baseRecord()
	submitted := time.Date(2025, 2, 28, 23, 30, 0, 0, time.UTC)

	merged, err := Merge(record, []crimeapi.LedgerEntry{ledgerEntry("RPT-001", submitted)})
	require.NoError(t, err)

	// Content fields come from the ledger
	assert.Equal(t, "ledger description", merged.Description)
	assert.Equal(t, "ledger translation", merged.TranslatedText)
	assert.Equal(t, "99 Chain Avenue", merged.Address)
	assert.Equal(t, "Ledgerton", merged.City)
	assert.Equal(t, "LG", merged.State)
	assert.Equal(t, 11.0, *merged.Latitude)
	assert.Equal(t, 21.0, *merged.Longitude)
	assert.Equal(t, submitted, merged.SubmittedAt)
	assert.True(t, merged.LedgerVerified)

	// Status and assignment stay relational
	assert.Equal(t, AdminAssigned, merged.AdminStatus)
	assert.Equal(t, PoliceInProgress, merged.PoliceStatus)
	assert.Equal(t, MLAccepted, merged.MLStatus)
	assert.Equal(t, "Central", merged.PoliceStation)
}

func TestMergeIgnoresOtherReports(t *testing.T) {
	record := baseRecord()

	merged, err := Merge(record, []crimeapi.LedgerEntry{
		ledgerEntry("RPT-999", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	assert.Equal(t, "db description", merged.Description)
	assert.False(t, merged.LedgerVerified)
}

func TestMergeDuplicateEntriesLatestWins(t *testing.T) {
	record := baseRecord()

	older := ledgerEntry("RPT-001", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	older.Data.Description = "older ledger copy"
	newer := ledgerEntry("RPT-001", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	newer.Data.Description = "newer ledger copy"

	// Order in the chain must not matter
	merged, err := Merge(record, []crimeapi.LedgerEntry{newer, older})
	require.NoError(t, err)
	assert.Equal(t, "newer ledger copy", merged.Description)

	merged, err = Merge(record, []crimeapi.LedgerEntry{older, newer})
	require.NoError(t, err)
	assert.Equal(t, "newer ledger copy", merged.Description)
}

func TestMergeRejectsEmptyReportID(t *testing.T) {
	_, err := Merge(crimeapi.ReportRecord{}, nil)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestMergeClearsCoordinatesWhenLedgerHasNone(t *testing.T) {
	record := baseRecord()
	entry := ledgerEntry("RPT-001", record.SubmittedAt)
	entry.Data.Latitude = nil
	entry.Data.Longitude = nil

	merged, err := Merge(record, []crimeapi.LedgerEntry{entry})
	require.NoError(t, err)

	assert.False(t, merged.HasLocation())
	assert.True(t, merged.LedgerVerified)
}

func TestBadgesFor(t *testing.T) {
	merged, err := Merge(baseRecord(), nil)
	require.NoError(t, err)

	badges := BadgesFor(merged)
	assert.Equal(t, Badge{Label: "Accepted", Tone: "success"}, badges.ML)
	assert.Equal(t, Badge{Label: "Assigned", Tone: "info"}, badges.Admin)
	assert.Equal(t, Badge{Label: "In Progress", Tone: "warning"}, badges.Police)
	assert.Equal(t, Badge{Label: "High", Tone: "warning"}, badges.Urgency)
}

func TestBadgeUnknownValueFallsBack(t *testing.T) {
	badge := PoliceStatus("SOMETHING_NEW").Badge()
	assert.Equal(t, Badge{Label: "SOMETHING_NEW", Tone: "neutral"}, badge)
}
