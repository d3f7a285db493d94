package shell

import (
	"encoding/json"
	"fmt"

	"fadel/internal/infrastructure/errors"
)

type recentFilepathsPayload struct {
	RecentFilepaths *[]string `json:"recentFilepaths"`
}

// ParseRecentFilepaths decodes the front-end's recent-files payload. The first
// argument may be the decoded event object, a JSON string or raw JSON bytes.
func ParseRecentFilepaths(data ...interface{}) ([]string, error) {
	if len(data) == 0 || data[0] == nil {
		return nil, errors.NewShellError("parse_recent_filepaths",
			fmt.Errorf("event carried no payload"), errors.ErrCodePayload)
	}

	var raw []byte
	switch v := data[0].(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	case json.RawMessage:
		raw = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, errors.NewShellError("parse_recent_filepaths", err, errors.ErrCodePayload)
		}
		raw = encoded
	}

	var payload recentFilepathsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.NewShellErrorWithContext("parse_recent_filepaths", err,
			errors.ErrCodePayload,
			map[string]string{"payload_type": fmt.Sprintf("%T", data[0])})
	}
	if payload.RecentFilepaths == nil {
		return nil, errors.NewShellError("parse_recent_filepaths",
			fmt.Errorf("payload has no recentFilepaths field"), errors.ErrCodePayload)
	}

	return *payload.RecentFilepaths, nil
}
