package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/shenergia/solarcalc/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"100", 100, false},
		{"99", 0, true},
		{"99.99", 0, true},
		{"500", 500, false},
		{" 500 ", 500, false},
		{"R$ 500", 500, false},
		{"R$1.234,56", 1234.56, false},
		{"812,50", 812.5, false},
		{"812.50", 812.5, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-500", 0, true},
		{"0", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAmount(tt.raw, 100)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = %v, want error", tt.raw, got)
				}
				if !errors.Is(err, model.ErrInvalidAmount) {
					t.Errorf("error %v does not wrap ErrInvalidAmount", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNoticeFor(t *testing.T) {
	_, err := ParseAmount("50", 100)
	notice := NoticeFor(err)
	if !strings.Contains(notice, "mínimo R$ 100") {
		t.Errorf("notice = %q", notice)
	}

	if got := NoticeFor(errors.New("boom")); got != "boom" {
		t.Errorf("plain error notice = %q", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, want float64 }{
		{100, 300},
		{300, 300},
		{900, 900},
		{10000, 10000},
		{25000, 10000},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 300, 10000); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
