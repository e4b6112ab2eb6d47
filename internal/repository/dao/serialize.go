package dao

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PathList is a TEXT column holding a JSON array of public media paths.
// Unparseable or empty content scans to an empty list rather than failing,
// so a corrupted blob never takes an owner's profile down with it.
type PathList []string

func (l PathList) Value() (driver.Value, error) {
	if l == nil {
		l = PathList{}
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}

	return string(data), nil
}

func (l *PathList) Scan(src interface{}) error {
	*l = PathList{}

	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil
	}

	if len(data) == 0 {
		return nil
	}

	var parsed []string
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil
	}
	*l = parsed

	return nil
}

// SettingsBlob is the TEXT column pinning an owner to its storage folder.
// A nil blob means the owner has not been provisioned yet.
type SettingsBlob struct {
	SettingName string `json:"setting_name"`
	Path        string `json:"path"`
	FolderName  string `json:"folder_name"`
}

// NullableSettings wraps SettingsBlob for TEXT storage; parse failures scan
// to nil, which callers treat as "provision again".
type NullableSettings struct {
	Blob *SettingsBlob
}

func (s NullableSettings) Value() (driver.Value, error) {
	if s.Blob == nil {
		return nil, nil
	}

	data, err := json.Marshal(s.Blob)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}

	return string(data), nil
}

func (s *NullableSettings) Scan(src interface{}) error {
	s.Blob = nil

	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil
	}

	if len(data) == 0 {
		return nil
	}

	var parsed SettingsBlob
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil
	}
	if parsed.FolderName == "" {
		return nil
	}
	s.Blob = &parsed

	return nil
}
