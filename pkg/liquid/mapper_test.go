package liquid

import (
	"encoding/json"
	"testing"

	"github.com/hyldmo/shopify-codegen/pkg/models"
)

func decode(t *testing.T, raw string) models.Setting {
	t.Helper()
	var list models.SettingList
	if err := json.Unmarshal([]byte("["+raw+"]"), &list); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("expected 1 setting, got %d", len(list.Items))
	}
	return list.Items[0]
}

func TestMapType(t *testing.T) {
	testCases := []struct {
		name     string
		setting  string
		expr     string
		required bool
	}{
		{"text without default", `{"type":"text","id":"a"}`, TypeString, false},
		{"text with default", `{"type":"text","id":"a","default":"x"}`, TypeString, true},
		{"text with empty default", `{"type":"text","id":"a","default":""}`, TypeString, true},
		{"textarea", `{"type":"textarea","id":"a"}`, TypeString, false},
		{"html", `{"type":"html","id":"a"}`, TypeString, false},
		{"url", `{"type":"url","id":"a"}`, TypeString, false},
		{"product", `{"type":"product","id":"a"}`, TypeString, false},
		{"collection", `{"type":"collection","id":"a"}`, TypeString, false},
		{"page", `{"type":"page","id":"a"}`, TypeString, false},
		{"image_picker", `{"type":"image_picker","id":"a"}`, TypeString, false},
		{"color", `{"type":"color","id":"a"}`, TypeString, false},
		{"color with default", `{"type":"color","id":"a","default":"#fff"}`, TypeString, true},
		{"video", `{"type":"video","id":"a"}`, TypeString, false},
		{"richtext", `{"type":"richtext","id":"a"}`, TypeRichText, true},
		{"checkbox", `{"type":"checkbox","id":"a"}`, TypeBoolean, true},
		{"checkbox with false default", `{"type":"checkbox","id":"a","default":false}`, TypeBoolean, true},
		{"range with default", `{"type":"range","id":"a","min":0,"max":10,"default":5}`, TypeNumber, true},
		{"number", `{"type":"number","id":"a"}`, TypeNumber, false},
		{"select", `{"type":"select","id":"a","options":[{"value":"s","label":"S"},{"value":"l","label":"L"}]}`, "'s' | 'l'", false},
		{"select without options", `{"type":"select","id":"a"}`, TypeString, false},
		{"select with empty options", `{"type":"select","id":"a","options":[],"default":"x"}`, TypeString, true},
		{"video_url", `{"type":"video_url","id":"a","accept":["youtube"]}`, TypeVideoURL, false},
		{"unknown kind", `{"type":"metaobject","id":"a"}`, TypeAny, false},
		{"missing kind", `{"id":"a","default":1}`, TypeAny, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expr, required := MapType(decode(t, tc.setting))
			if expr != tc.expr {
				t.Errorf("expected type %q, got %q", tc.expr, expr)
			}
			if required != tc.required {
				t.Errorf("expected required=%v, got %v", tc.required, required)
			}
		})
	}
}

func TestMapTypeHeaderOmitted(t *testing.T) {
	expr, _ := MapType(decode(t, `{"type":"header","content":"Layout"}`))
	if expr != "" {
		t.Errorf("expected no type for header, got %q", expr)
	}
}

func TestMapTypeNil(t *testing.T) {
	if expr, required := MapType(nil); expr != "" || required {
		t.Errorf("expected empty mapping for nil, got %q %v", expr, required)
	}
}

func TestQuote(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"text", `'text'`},
		{"it's", `'it\'s'`},
		{`a\b`, `'a\\b'`},
		{"a\nb", `'a\nb'`},
	}
	for _, tc := range testCases {
		if got := quote(tc.input); got != tc.expected {
			t.Errorf("quote(%q): expected %s, got %s", tc.input, tc.expected, got)
		}
	}
}
