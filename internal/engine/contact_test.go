package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var importNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestParseBirthday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"ISO", "1990-08-15", Date{Day: 15, Month: 8, Year: 1990}, false},
		{"Basic", "19900815", Date{Day: 15, Month: 8, Year: 1990}, false},
		{"RFC3339", "1990-08-15T10:00:00Z", Date{Day: 15, Month: 8, Year: 1990}, false},
		{"Timestamp", "19900815T100000Z", Date{Day: 15, Month: 8, Year: 1990}, false},
		{"Yearless_Dash", "--08-15", Date{}, true},
		{"Yearless_Basic", "--0815", Date{}, true},
		{"Before_MinYear", "1850-01-01", Date{}, true},
		{"CurrentYear", "2025-01-31", Date{Day: 31, Month: 1, Year: 2025}, false},
		{"After_CurrentYear", "2026-01-01", Date{}, true},
		{"Far_Future", "20990101", Date{}, true},
		{"Garbage", "next tuesday", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBirthday(tt.input, importNow.Year())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImportVCards(t *testing.T) {
	input := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Ada Lovelace",
		"BDAY:18151210",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Grace Hopper",
		"BDAY:19061209",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"N:Turing;Alan;;;",
		"BDAY:1912-06-23",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:No Year",
		"BDAY:--0704",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Not Born Yet",
		"BDAY:20990101",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:No Birthday",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"BDAY:20000101",
		"END:VCARD",
		"",
	}, "\r\n")

	contacts, err := ImportVCards(context.Background(), strings.NewReader(input), importNow)
	require.NoError(t, err)
	require.Len(t, contacts, 3)

	assert.Equal(t, "Grace Hopper", contacts[0].Name)
	assert.Equal(t, Date{Day: 9, Month: 12, Year: 1906}, contacts[0].DateOfBirth)

	assert.Equal(t, "Alan Turing", contacts[1].Name)
	assert.Equal(t, Date{Day: 23, Month: 6, Year: 1912}, contacts[1].DateOfBirth)

	assert.Equal(t, "Unknown", contacts[2].Name)
	assert.NotEmpty(t, contacts[2].UID)
}

func TestImportVCards_RoundTripsExport(t *testing.T) {
	dob := Date{Day: 29, Month: 2, Year: 1996}
	data, err := ExportVCard("Leap Person", dob)
	require.NoError(t, err)

	contacts, err := ImportVCards(context.Background(), strings.NewReader(string(data)), importNow)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Leap Person", contacts[0].Name)
	assert.Equal(t, dob, contacts[0].DateOfBirth)
	assert.Equal(t, birthdayUID("Leap Person", dob), contacts[0].UID)
}

func TestImportVCards_NotVCard(t *testing.T) {
	contacts, err := ImportVCards(context.Background(), strings.NewReader("hello\nworld\n"), importNow)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestImportVCards_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ImportVCards(ctx, strings.NewReader("BEGIN:VCARD\r\nEND:VCARD\r\n"), importNow)
	assert.ErrorIs(t, err, context.Canceled)
}
