package domain

import "testing"

func TestNewSpecies(t *testing.T) {
	tests := []struct {
		input   string
		want    Species
		wantErr bool
	}{
		{"dog", "dog", false},
		{"  Cat  ", "cat", false},
		{"REPTILE", "reptile", false},
		{"other", "other", false},
		{"", "", true},
		{"dragon", "", true},
	}

	for _, tt := range tests {
		got, err := NewSpecies(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewSpecies(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NewSpecies(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewRecordType(t *testing.T) {
	tests := []struct {
		input   string
		want    RecordType
		wantErr bool
	}{
		{"vaccination", "vaccination", false},
		{"Checkup", "checkup", false},
		{" weight ", "weight", false},
		{"", "", true},
		{"grooming", "", true},
	}

	for _, tt := range tests {
		got, err := NewRecordType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewRecordType(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NewRecordType(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewFrequency(t *testing.T) {
	tests := []struct {
		input   string
		want    Frequency
		wantErr bool
	}{
		{"", "once", false},
		{"daily", "daily", false},
		{"Monthly", "monthly", false},
		{"fortnightly", "", true},
	}

	for _, tt := range tests {
		got, err := NewFrequency(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewFrequency(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NewFrequency(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}
