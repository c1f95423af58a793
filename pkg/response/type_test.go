package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"classroom-occupancy/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	// DateTime marshals via Local(), so the rendered clock depends on the
	// test runner's timezone. Check the shape instead of the exact instant.
	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) != len(response.DateTimeFormat)+2 {
		t.Errorf("expected %q layout, got %s", response.DateTimeFormat, str)
	}
}
