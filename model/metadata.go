package model

import (
	"encoding/json"
	"fmt"
)

// DataID identifies one dataset instance in a repository, e.g.
// {"visit": 100, "ccd": 3}
type DataID map[string]int

// Metadata is a FITS-header-like set of cards, as decoded from JSON.
// Numeric cards decode as float64.
type Metadata map[string]interface{}

// ParseMetadata parses raw JSON metadata cards
func ParseMetadata(data []byte) (Metadata, error) {
	md := Metadata{}
	err := json.Unmarshal(data, &md)
	return md, err
}

// Float recovers the card at the given key, assuming it is numeric
func (md Metadata) Float(key string) (float64, error) {
	if val, ok := md[key]; !ok {
		return 0, fmt.Errorf("Metadata card does not exist: %s", key)
	} else if valFloat, ok := val.(float64); ok {
		return valFloat, nil
	} else {
		return 0, fmt.Errorf("Could not convert card to float: key=%s, value=%v", key, val)
	}
}

// Int recovers the card at the given key, assuming it is an integer
func (md Metadata) Int(key string) (int, error) {
	val, err := md.Float(key)
	if err != nil {
		return 0, err
	}
	return int(val), nil
}

// String recovers the card at the given key, assuming it is a string
func (md Metadata) String(key string) (string, error) {
	if val, ok := md[key]; !ok {
		return "", fmt.Errorf("Metadata card does not exist: %s", key)
	} else if valStr, ok := val.(string); ok {
		return valStr, nil
	} else {
		return "", fmt.Errorf("Could not convert card to string: key=%s, value=%v", key, val)
	}
}
