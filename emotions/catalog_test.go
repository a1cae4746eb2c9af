package emotions_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/EmpoweredVote/emotodo-seed/emotions"
)

func TestCatalog_IsValid(t *testing.T) {
	if err := emotions.Validate(emotions.Catalog()); err != nil {
		t.Fatalf("built-in catalog failed validation: %v", err)
	}
}

func TestCatalog_Order(t *testing.T) {
	want := []string{"excited", "motivated", "calm", "neutral", "tired", "anxious", "overwhelmed"}
	got := emotions.IDs(emotions.Catalog())
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected ids %v, got %v", want, got)
	}
}

// TestCatalog_ReturnsCopy verifies that mutating the returned slice does not
// leak into later calls.
func TestCatalog_ReturnsCopy(t *testing.T) {
	first := emotions.Catalog()
	first[0].Name = "Changed"

	second := emotions.Catalog()
	if second[0].Name != "Excited" {
		t.Errorf("catalog was mutated through a returned copy: %q", second[0].Name)
	}
}

func TestComputeMissing_Subset(t *testing.T) {
	missing := emotions.ComputeMissing([]string{"excited", "calm"}, emotions.Catalog())

	want := []string{"motivated", "neutral", "tired", "anxious", "overwhelmed"}
	if got := emotions.IDs(missing); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestComputeMissing_AllPresent(t *testing.T) {
	all := emotions.IDs(emotions.Catalog())
	extra := append([]string{"bored"}, all...)

	if missing := emotions.ComputeMissing(extra, emotions.Catalog()); len(missing) != 0 {
		t.Errorf("expected nothing missing, got %v", emotions.IDs(missing))
	}
}

func TestComputeMissing_EmptyStore(t *testing.T) {
	missing := emotions.ComputeMissing(nil, emotions.Catalog())
	if len(missing) != emotions.Size {
		t.Errorf("expected %d missing, got %d", emotions.Size, len(missing))
	}
}

func TestFields(t *testing.T) {
	f := emotions.Catalog()[4].Fields()

	want := map[string]any{
		"id":           "tired",
		"name":         "Tired",
		"emoji":        "😴",
		"color":        "#f59e0b",
		"category":     "negative",
		"energy":       "low",
		"displayOrder": 5,
	}
	if !reflect.DeepEqual(f, want) {
		t.Errorf("expected %v, got %v", want, f)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func([]emotions.Emotion) []emotions.Emotion{
		"short": func(l []emotions.Emotion) []emotions.Emotion { return l[:6] },
		"duplicate id": func(l []emotions.Emotion) []emotions.Emotion {
			l[1].ID = l[0].ID
			return l
		},
		"duplicate order": func(l []emotions.Emotion) []emotions.Emotion {
			l[1].DisplayOrder = 1
			return l
		},
		"order out of range": func(l []emotions.Emotion) []emotions.Emotion {
			l[6].DisplayOrder = 8
			return l
		},
		"bad category": func(l []emotions.Emotion) []emotions.Emotion {
			l[2].Category = "mixed"
			return l
		},
		"bad energy": func(l []emotions.Emotion) []emotions.Emotion {
			l[2].Energy = "none"
			return l
		},
		"bad color": func(l []emotions.Emotion) []emotions.Emotion {
			l[3].Color = "grey"
			return l
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			err := emotions.Validate(mutate(emotions.Catalog()))
			if !errors.Is(err, emotions.ErrInvalidCatalog) {
				t.Errorf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	groups := emotions.Summarize(emotions.Catalog())

	want := []string{
		"Positive (high energy): excited, motivated",
		"Positive (medium energy): calm",
		"Neutral (medium energy): neutral",
		"Negative (low energy): tired, anxious, overwhelmed",
	}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i, g := range groups {
		if g.String() != want[i] {
			t.Errorf("group %d: expected %q, got %q", i, want[i], g.String())
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := emotions.WriteYAML(&buf, "emotions", emotions.Catalog()); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}
	if !strings.Contains(buf.String(), "displayOrder: 7") {
		t.Errorf("expected displayOrder keys in output, got:\n%s", buf.String())
	}

	collection, list, err := emotions.ReadYAML(&buf)
	if err != nil {
		t.Fatalf("ReadYAML failed: %v", err)
	}
	if collection != "emotions" {
		t.Errorf("expected collection %q, got %q", "emotions", collection)
	}
	if !reflect.DeepEqual(list, emotions.Catalog()) {
		t.Errorf("catalog changed across YAML export:\n%v", list)
	}
}
