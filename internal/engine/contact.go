package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-birthday-wheel/internal/config"
)

// Contact is a birthday read from a vCard.
type Contact struct {
	// UID is stable for a given name and date, matching exported cards.
	UID string

	// Name is the display name (Formatted Name or Structured Name).
	Name string

	DateOfBirth Date
}

// ImportVCards decodes every card in r and keeps those carrying a full
// date of birth. Malformed cards and yearless or unparsable BDAY values are
// skipped, since the picker needs a year. So are years the wheel does not
// carry, before MinYear or after the year of now.
func ImportVCards(ctx context.Context, r io.Reader, now time.Time) ([]Contact, error) {
	decoder := vcard.NewDecoder(r)
	stats := struct{ processed, imported int }{}
	var contacts []Contact

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A broken card does not invalidate the rest of the stream.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		stats.processed++
		bday := card.Value(vcard.FieldBirthday)
		if bday == "" {
			continue
		}

		dob, err := parseBirthday(bday, now.Year())
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday,
				config.LogKeyError, err)
			continue
		}

		name := displayName(contactName(card))
		contacts = append(contacts, Contact{
			UID:         birthdayUID(name, dob),
			Name:        name,
			DateOfBirth: dob,
		})
		stats.imported++
	}

	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyProcessed, stats.processed,
		config.LogKeyImported, stats.imported)
	return contacts, nil
}

// contactName prefers FN over the structured N field.
func contactName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		return strings.TrimSpace(strings.Join(strings.Fields(n.GivenName+" "+n.FamilyName), " "))
	}
	return ""
}

// parseBirthday accepts the full-date BDAY forms found in the wild.
// Truncated forms like --MM-DD carry no year and are rejected.
func parseBirthday(value string, maxYear int) (Date, error) {
	formats := []string{
		config.DateFormatISO,
		config.DateFormatBasic,
		time.RFC3339,
		config.DateFormatStamp,
	}

	for _, f := range formats {
		t, err := time.Parse(f, value)
		if err != nil {
			continue
		}
		if t.Year() < config.MinYear || t.Year() > maxYear {
			return Date{}, fmt.Errorf("%s: %d", config.ErrYearRange, t.Year())
		}
		return DateFromTime(t), nil
	}
	return Date{}, errors.New(config.ErrDateParse)
}
