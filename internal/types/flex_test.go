package types

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestFlexUint64(t *testing.T) {
	tests := []struct {
		input   string
		want    uint64
		wantErr bool
	}{
		{`42`, 42, false},
		{`"42"`, 42, false},
		{`" 7 "`, 7, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f FlexUint64
			err := json.Unmarshal([]byte(tt.input), &f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unexpected error state: %v", err)
			}
			if !tt.wantErr && f.Uint64() != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, f.Uint64())
			}
		})
	}
}

func TestOptionalID(t *testing.T) {
	if OptionalID(nil) != nil {
		t.Error("Expected nil for a missing id")
	}
	zero := FlexUint64(0)
	if OptionalID(&zero) != nil {
		t.Error("Expected nil for a zero id")
	}
	five := FlexUint64(5)
	if got := OptionalID(&five); got == nil || *got != 5 {
		t.Errorf("Expected 5, got %v", got)
	}
	if got := FlexID(OptionalID(&five)); got == nil || *got != five {
		t.Errorf("Expected round trip to 5, got %v", got)
	}
}

func TestFlexList(t *testing.T) {
	type record struct {
		Name string `json:"name"`
	}

	tests := []struct {
		input string
		want  []string
	}{
		{`[{"name":"a"},{"name":"b"}]`, []string{"a", "b"}},
		{`{"name":"single"}`, []string{"single"}},
		{`null`, nil},
		{`[]`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var list FlexList[record]
			if err := json.Unmarshal([]byte(tt.input), &list); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if len(list.Slice()) != len(tt.want) {
				t.Fatalf("Expected %d records, got %d", len(tt.want), len(list))
			}
			for i, r := range list.Slice() {
				if r.Name != tt.want[i] {
					t.Errorf("Expected %q at %d, got %q", tt.want[i], i, r.Name)
				}
			}
		})
	}
}
