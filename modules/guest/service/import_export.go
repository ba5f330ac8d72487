package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	coreEntity "guestdesk/core/entity"
	appErrors "guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/utils"
	"guestdesk/modules/guest/dto"
	"guestdesk/modules/guest/entity"
	notifEntity "guestdesk/modules/notification/entity"

	"github.com/google/uuid"
)

// Fixed import/export columns; any extra header is matched against the
// event's active custom-field keys.
var csvBaseHeaders = []string{"name", "country_code", "phone", "email", "relationship", "notes"}

// ImportCSV reads guests from an uploaded CSV. The operation is not
// atomic: rows import independently and failures come back as per-row
// errors alongside the success count.
func (s *GuestService) ImportCSV(ctx context.Context, hostID, eventID uuid.UUID, r io.Reader) (*dto.ImportResponse, error) {
	event, err := s.events.GetByID(ctx, hostID, eventID)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "empty or unreadable CSV", err)
	}

	colIndex := map[string]int{}
	for i, h := range header {
		colIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := colIndex["name"]; !ok {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "CSV must have a name column", nil)
	}

	// Extra headers that match active custom fields fill those fields.
	customKeys := map[string]int{}
	for key, meta := range event.CustomFields {
		if !meta.Active {
			continue
		}
		if idx, ok := colIndex[key]; ok {
			customKeys[key] = idx
		}
	}

	resp := &dto.ImportResponse{}
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportRowError{Row: rowNum, Message: "unparseable row"})
			continue
		}

		field := func(name string) string {
			idx, ok := colIndex[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		name := field("name")
		if name == "" {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportRowError{Row: rowNum, Message: "missing name"})
			continue
		}

		guest := &entity.Guest{
			EventID:          eventID,
			PublicCode:       utils.GenerateID(),
			Name:             name,
			PhoneCountryCode: field("country_code"),
			PhoneNumber:      field("phone"),
			Email:            field("email"),
			Relationship:     field("relationship"),
			Notes:            field("notes"),
			CustomFields:     coreEntity.StringMap{},
		}
		for key, idx := range customKeys {
			if idx < len(record) {
				if v := strings.TrimSpace(record[idx]); v != "" {
					guest.CustomFields[key] = v
				}
			}
		}

		if err := s.repo.Create(ctx, guest); err != nil {
			logger.Error("GuestService:ImportCSV:CreateFailed", "row", rowNum, "error", err)
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportRowError{Row: rowNum, Message: "failed to save"})
			continue
		}
		resp.Imported++
	}

	logger.Info("GuestService:ImportCSV:Done",
		"event_id", eventID, "imported", resp.Imported, "failed", resp.Failed)

	s.notify(ctx, hostID, "Guest import finished",
		fmt.Sprintf("%d guest(s) imported, %d failed", resp.Imported, resp.Failed),
		notifEntity.TypeImportFinished,
		map[string]interface{}{"event_id": eventID.String(), "imported": resp.Imported, "failed": resp.Failed})
	return resp, nil
}

// ExportCSV writes the event's live guest list. Custom-field columns cover
// the event's active keys, sorted for a stable layout.
func (s *GuestService) ExportCSV(ctx context.Context, hostID, eventID uuid.UUID, w io.Writer) error {
	event, err := s.events.GetByID(ctx, hostID, eventID)
	if err != nil {
		return err
	}
	guests, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list guests", err)
	}

	activeKeys := event.CustomFields.ActiveKeys()
	sort.Strings(activeKeys)

	writer := csv.NewWriter(w)
	header := append(append([]string{}, csvBaseHeaders...), "rsvp_status", "guests_count", "invitation_sent")
	header = append(header, activeKeys...)
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := range guests {
		g := &guests[i]
		if g.Deleted {
			continue
		}
		count := ""
		if g.RSVPGuestsCount != nil {
			count = strconv.Itoa(*g.RSVPGuestsCount)
		}
		row := []string{
			g.Name,
			g.PhoneCountryCode,
			g.PhoneNumber,
			g.Email,
			g.Relationship,
			g.Notes,
			string(g.EffectiveAnswer()),
			count,
			fmt.Sprintf("%t", g.InvitationSent),
		}
		for _, key := range activeKeys {
			row = append(row, g.CustomFields[key])
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
