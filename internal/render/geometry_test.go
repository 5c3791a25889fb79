package render

import (
	"errors"
	"testing"

	"clipforge/internal/services"
)

func TestVerticalCropFilter(t *testing.T) {
	got := VerticalCrop().Filter()
	want := "crop='min(iw,ih*9/16)':ih:'(iw-min(iw,ih*9/16))/2':0,scale=1080:1920"
	if got != want {
		t.Errorf("Filter() = %q, want %q", got, want)
	}
}

func TestValidateSource(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		ok     bool
	}{
		// 16:9 landscape: crop width is ih*9/16 = 607.5, inside the frame.
		{"1080p landscape", 1920, 1080, true},
		{"4k landscape", 3840, 2160, true},
		{"square", 1080, 1080, true},
		{"exactly 9:16", 1080, 1920, true},
		{"portrait", 1080, 2400, false},
		{"zero width", 0, 1080, false},
		{"zero height", 1920, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSource(tt.width, tt.height)
			if tt.ok && err != nil {
				t.Errorf("ValidateSource(%d, %d) = %v, want nil", tt.width, tt.height, err)
			}
			if !tt.ok {
				if !errors.Is(err, services.ErrValidation) {
					t.Errorf("ValidateSource(%d, %d) = %v, want ErrValidation", tt.width, tt.height, err)
				}
			}
		})
	}
}

func TestOutcomeKindString(t *testing.T) {
	tests := []struct {
		kind OutcomeKind
		want string
	}{
		{OutcomeSuccess, "success"},
		{OutcomeCapabilityMissing, "capability_missing"},
		{OutcomeFailure, "failure"},
		{OutcomeTimeout, "timeout"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
