package cmd

import (
	"testing"
	"time"
)

// Tests for package variables

func TestProjectName(t *testing.T) {
	if ProjectName == "" {
		t.Error("ProjectName should not be empty")
	}
}

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
}

// Tests for date validation

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid date", "01-15-2019", false},
		{"valid end of year", "12-31-2026", false},
		{"slash separators rejected", "01/15/2019", true},
		{"missing zero padding", "1-15-2019", true},
		{"two digit year", "01-15-19", true},
		{"garbage", "yesterday", true},
		{"empty", "", true},
		{"trailing text", "01-15-2019x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestTodayPassesValidation(t *testing.T) {
	// The default date is today in MM-DD-YYYY; it must always validate.
	today := time.Now().Format("01-02-2006")
	if err := validateDate(today); err != nil {
		t.Errorf("validateDate(%q) = %v, want nil", today, err)
	}
}

// Tests for API date conversion

func TestToAPIDate(t *testing.T) {
	if got := toAPIDate("01-15-2019"); got != "01/15/2019" {
		t.Errorf("toAPIDate(01-15-2019) = %q, want 01/15/2019", got)
	}
}

// Tests for config path resolution

func TestGetConfigPathDefault(t *testing.T) {
	cfgFile = ""
	if got := getConfigPath(); got == "" {
		t.Error("getConfigPath() returned empty string")
	}
}

func TestGetConfigPathFlag(t *testing.T) {
	cfgFile = "/tmp/custom.yml"
	defer func() { cfgFile = "" }()

	if got := getConfigPath(); got != "/tmp/custom.yml" {
		t.Errorf("getConfigPath() = %q, want flag value", got)
	}
}
