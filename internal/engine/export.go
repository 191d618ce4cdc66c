package engine

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/go-birthday-wheel/internal/config"
)

// ExportFormat selects the serialization produced by Export.
type ExportFormat int

const (
	FormatVCard ExportFormat = iota
	FormatICal
)

// String returns the format name used in log records.
func (f ExportFormat) String() string {
	switch f {
	case FormatVCard:
		return "vcard"
	case FormatICal:
		return "ical"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Export serializes a confirmed birthday in the requested format.
func Export(f ExportFormat, name string, dob Date, now time.Time) ([]byte, error) {
	switch f {
	case FormatVCard:
		return ExportVCard(name, dob)
	case FormatICal:
		return ExportICal(name, dob, now)
	}
	return nil, fmt.Errorf("%s: %s", config.ErrExportFormat, f)
}

// ExportVCard renders a vCard 4.0 carrying the name and BDAY.
func ExportVCard(name string, dob Date) ([]byte, error) {
	dob, _ = dob.Normalize()
	name = displayName(name)

	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldUID, birthdayUID(name, dob))
	card.SetValue(vcard.FieldFormattedName, name)
	card.SetName(splitName(name))
	card.SetValue(vcard.FieldBirthday, dob.Time(time.UTC).Format(config.DateFormatBasic))

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}

	slog.Debug("vCard rendered",
		config.LogKeyComponent, config.CompEngine,
		config.LogKeySizeBytes, buf.Len())
	return buf.Bytes(), nil
}

// ExportICal renders a calendar with one all-day event repeating yearly
// from the date of birth.
func ExportICal(name string, dob Date, now time.Time) ([]byte, error) {
	dob, _ = dob.Normalize()
	name = displayName(name)

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, birthdayUID(name, dob), config.UIDDomain))
	event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FallbackSummary, name))

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())
	event.Props.Set(dtStamp)

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(dob.Time(time.UTC))
	event.Props.Set(dtStart)

	// Set manually: SetText would add a VALUE=TEXT parameter to a RECUR property.
	rrule := ical.NewProp(config.PropRRule)
	rrule.Value = config.ICalRRule
	event.Props.Set(rrule)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug("iCalendar rendered",
		config.LogKeyComponent, config.CompEngine,
		config.LogKeySizeBytes, buf.Len())
	return buf.Bytes(), nil
}

// birthdayUID is stable for a given name and date so re-imports update
// the same contact or event instead of duplicating it.
func birthdayUID(name string, dob Date) string {
	key := config.UIDSalt + name + "|" + dob.Time(time.UTC).Format(config.DateFormatISO)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

func displayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return config.FallbackName
	}
	return name
}

// splitName treats the last word as the family name.
func splitName(name string) *vcard.Name {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return &vcard.Name{GivenName: name}
	}
	return &vcard.Name{
		GivenName:  strings.Join(parts[:len(parts)-1], " "),
		FamilyName: parts[len(parts)-1],
	}
}
