// Package baseline loads the pre-existing command list the generator enriches.
package baseline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"

	"github.com/dtnitsch/lumdoc/models"
	"github.com/dtnitsch/lumdoc/pkg/storage"
)

var (
	// ErrNotFound is returned when the baseline file does not exist.
	ErrNotFound = errors.New("baseline file not found")
	// ErrMalformed is returned when the baseline is not a JSON array of records.
	ErrMalformed = errors.New("baseline file is malformed")
	// ErrInvalid is returned when a record fails validation.
	ErrInvalid = errors.New("baseline record is invalid")
)

var validate = validator.New()

// Load reads and validates the baseline collection at path, preserving
// its order.
func Load(s *storage.Storage, path string) ([]models.BaselineRecord, error) {
	data, err := s.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read baseline %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a baseline JSON array and validates every record.
func Decode(data []byte) ([]models.BaselineRecord, error) {
	var records []models.BaselineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalid, i, err)
		}
	}
	return records, nil
}

// Duplicates returns the names that occur more than once, in first-seen order.
func Duplicates(records []models.BaselineRecord) []string {
	seen := make(map[string]int, len(records))
	var dups []string
	for _, rec := range records {
		seen[rec.Name]++
		if seen[rec.Name] == 2 {
			dups = append(dups, rec.Name)
		}
	}
	return dups
}
