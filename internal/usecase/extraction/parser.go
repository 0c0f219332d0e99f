package extraction

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
)

// DefaultDeadlineDays is applied when the upstream response carries no
// usable deadline for an item.
const DefaultDeadlineDays = 7

// Parser validates and normalizes extraction responses from the completion
// endpoint. The response is untrusted: every item is checked and the whole
// batch is rejected on the first violation so hallucinated garbage never
// lands next to trustworthy rows.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseExtractionResponse parses the JSON-mode completion into ActionItem
// entities in response order. Returns an error describing the first
// offending item; no partial result is ever returned.
func (p *Parser) ParseExtractionResponse(raw string, meetingID uuid.UUID, now time.Time) ([]*entities.ActionItem, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	if payload == nil {
		return nil, fmt.Errorf("response is not a JSON object")
	}

	rawItems, ok := payload["action_items"]
	if !ok {
		return nil, fmt.Errorf("response is missing action_items")
	}
	list, ok := rawItems.([]interface{})
	if !ok {
		return nil, fmt.Errorf("action_items is not an array")
	}

	defaultDeadline := now.Add(DefaultDeadlineDays * 24 * time.Hour)

	items := make([]*entities.ActionItem, 0, len(list))
	for idx, el := range list {
		obj, ok := el.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("action item at index %d is not an object", idx)
		}

		desc, _ := obj["description"].(string)
		desc = strings.TrimSpace(desc)
		if desc == "" {
			return nil, fmt.Errorf("action item at index %d has no description", idx)
		}

		var assignee *string
		if v, ok := obj["assignee"]; ok && v != nil {
			a := strings.TrimSpace(fmt.Sprint(v))
			assignee = &a
		}

		priRaw, ok := obj["priority"]
		if !ok || priRaw == nil {
			return nil, fmt.Errorf("action item at index %d has no priority", idx)
		}
		priority := titleCase(strings.TrimSpace(fmt.Sprint(priRaw)))
		if !entities.IsValidPriority(priority) {
			return nil, fmt.Errorf("action item at index %d has invalid priority %q", idx, priority)
		}

		deadline, err := parseDeadline(obj["deadline"], defaultDeadline)
		if err != nil {
			return nil, fmt.Errorf("action item at index %d has invalid deadline: %w", idx, err)
		}

		item := entities.NewActionItem(meetingID, desc)
		item.Assignee = assignee
		item.Priority = priority
		item.Deadline = deadline
		items = append(items, item)
	}

	return items, nil
}

// parseDeadline resolves an upstream deadline value.
//   - null/absent or empty string: default
//   - string ending in "Z": UTC-offset ISO-8601
//   - other strings: ISO-8601 with offset or naive (naive taken as UTC);
//     a string that fails to parse is a hard error, never silently defaulted
//   - numbers: Unix timestamp in seconds
//   - any other type: default
func parseDeadline(v interface{}, defaultDeadline time.Time) (*time.Time, error) {
	switch dl := v.(type) {
	case nil:
		return &defaultDeadline, nil
	case string:
		s := strings.TrimSpace(dl)
		if s == "" {
			return &defaultDeadline, nil
		}
		t, err := parseISOTimestamp(s)
		if err != nil {
			return nil, err
		}
		return &t, nil
	case float64:
		sec := int64(dl)
		nsec := int64((dl - float64(sec)) * float64(time.Second))
		t := time.Unix(sec, nsec).UTC()
		return &t, nil
	default:
		return &defaultDeadline, nil
	}
}

// isoLayouts are the accepted ISO-8601 shapes, offset-aware first
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISOTimestamp(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as ISO-8601", s)
}

// titleCase normalizes enum-ish strings: first letter of each word upper,
// rest lower ("mEdIuM" -> "Medium").
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
