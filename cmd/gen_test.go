package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSizes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"single size", "64", []int{64}, false},
		{"multiple sizes", "64,128", []int{64, 128}, false},
		{"spaces around sizes", " 32 , 64 ", []int{32, 64}, false},
		{"not a number", "64,big", nil, true},
		{"zero", "0", nil, true},
		{"negative", "-64", nil, true},
		{"trailing comma", "64,", nil, true},
		{"empty", "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSizes(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSizes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseSizes(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}
