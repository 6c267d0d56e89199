package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"figure-studio/models"
	"figure-studio/utils"
)

// ListingNormalizer turns one source's payload shape into canonical catalog entries
type ListingNormalizer interface {
	Provenance() models.Provenance
	Normalize(data []byte) (NormalizeReport, error)
}

// NormalizeReport is the result of normalizing one raw listing
type NormalizeReport struct {
	Entries  []models.CatalogEntry
	Rejected int // records missing family or garment id
}

// ListingSource pairs where a listing comes from with how to read it
type ListingSource struct {
	Fetcher    ListingFetcher
	Normalizer ListingNormalizer
}

// flexString accepts JSON strings, numbers and booleans; sources disagree on id and flag types
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*f = flexString(strconv.FormatFloat(value, 'f', -1, 64))
	case bool:
		*f = flexString(strconv.FormatBool(value))
	default:
		return fmt.Errorf("unsupported value %s", string(data))
	}
	return nil
}

func (f flexString) String() string {
	return strings.TrimSpace(string(f))
}

// flexStrings accepts arrays mixing strings and numbers
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	var raw []flexString
	if err := json.Unmarshal(data, &raw); err != nil {
		// A single scalar color is treated as a one-element list
		var single flexString
		if errSingle := json.Unmarshal(data, &single); errSingle != nil {
			return err
		}
		raw = []flexString{single}
	}
	out := make([]string, 0, len(raw))
	for _, value := range raw {
		if value.String() != "" {
			out = append(out, value.String())
		}
	}
	*f = out
	return nil
}

// parseGarmentID accepts plain integer ids only, with at most as many digits
// as a figure code segment carries
func parseGarmentID(raw string) (int, bool) {
	if raw == "" || len(strings.TrimLeft(raw, "+")) > utils.MaxIDDigits {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
