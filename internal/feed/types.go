package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/five82/scanboard/internal/results"
)

// Action names the kind of a push message on the files channel.
type Action string

const (
	ActionAddFile    Action = "add_file"
	ActionResetTable Action = "reset_table"
)

var (
	// ErrUnknownAction is returned by Decode for actions it does not handle.
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingFileData is returned by Decode for add_file without a payload.
	ErrMissingFileData = errors.New("add_file without file_data")
)

// Message mirrors a files channel frame.
type Message struct {
	Action   Action    `json:"action"`
	FileData *FileData `json:"file_data,omitempty"`
}

// FileData describes one processed document.
type FileData struct {
	ID            LooseString `json:"id"`
	FileName      string      `json:"file_name"`
	Score         LooseString `json:"score"`
	ProcessedDate string      `json:"processed_date,omitempty"`
	ProcessedBy   string      `json:"processed_by,omitempty"`
}

// Record converts the payload into a table record.
func (f FileData) Record() results.Record {
	return results.Record{
		ID:          string(f.ID),
		FileName:    f.FileName,
		Score:       string(f.Score),
		ProcessedAt: parseTime(f.ProcessedDate),
		ProcessedBy: strings.TrimSpace(f.ProcessedBy),
	}
}

// LooseString accepts a JSON string or number. Numbers keep their JSON text.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = LooseString(num.String())
	return nil
}

// Decode parses a files channel frame into a table event.
func Decode(data []byte) (results.Event, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	switch msg.Action {
	case ActionAddFile:
		if msg.FileData == nil {
			return nil, ErrMissingFileData
		}
		return results.AddRecord{Record: msg.FileData.Record()}, nil
	case ActionResetTable:
		return results.ResetTable{}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownAction, msg.Action)
	}
}

// Progress mirrors a frame of the scan progress channel.
type Progress struct {
	Counter int    `json:"counter"`
	Pending int    `json:"pending"`
	Graded  int    `json:"graded"`
	Message string `json:"message"`
}

// DecodeProgress parses a progress channel frame.
func DecodeProgress(data []byte) (Progress, error) {
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("decode progress: %w", err)
	}
	return p, nil
}

// ResetRequest asks the server to clear every client table and replay its
// records.
type ResetRequest struct {
	Message string `json:"message"`
}

// NewResetRequest returns the reset request frame.
func NewResetRequest() ResetRequest {
	return ResetRequest{Message: "reset"}
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
