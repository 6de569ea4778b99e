package domain

import (
	"fmt"
	"strings"
)

var allowedSpecies = []string{"dog", "cat", "bird", "rabbit", "hamster", "fish", "reptile", "other"}

var allowedRecordTypes = []string{"vaccination", "checkup", "medication", "surgery", "allergy", "weight", "other"}

var allowedFrequencies = []string{"once", "daily", "weekly", "monthly", "yearly"}

type Species string

func NewSpecies(value string) (Species, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", fmt.Errorf("species is required")
	}
	for _, allowed := range allowedSpecies {
		if allowed == trimmed {
			return Species(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid species: %s", trimmed)
}

func (s Species) String() string {
	return string(s)
}

type RecordType string

func NewRecordType(value string) (RecordType, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", fmt.Errorf("record type is required")
	}
	for _, allowed := range allowedRecordTypes {
		if allowed == trimmed {
			return RecordType(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid record type: %s", trimmed)
}

func (t RecordType) String() string {
	return string(t)
}

type Frequency string

func NewFrequency(value string) (Frequency, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return Frequency("once"), nil
	}
	for _, allowed := range allowedFrequencies {
		if allowed == trimmed {
			return Frequency(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid frequency: %s", trimmed)
}

func (f Frequency) String() string {
	return string(f)
}
