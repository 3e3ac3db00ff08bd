package liquid

import "testing"

func TestCanonicalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"custom-content", "CustomContent"},
		{"custom_content", "CustomContent"},
		{"t:sections.header.name", "SectionsHeaderName"},
		{"@app", "App"},
		{"image with  text", "ImageWithText"},
		{"featured-collection.v2", "FeaturedCollectionV2"},
		{"heroBanner", "HeroBanner"},
		{"3-columns", "3Columns"},
		{"already", "Already"},
		{"", ""},
		{"--", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := Canonicalize(tc.input); got != tc.expected {
				t.Errorf("Canonicalize(%q): expected %q, got %q", tc.input, tc.expected, got)
			}
		})
	}
}

func TestCanonicalizeDeterministic(t *testing.T) {
	for _, in := range []string{"a-b_c:d.e f", "t:x", "@app"} {
		if Canonicalize(in) != Canonicalize(in) {
			t.Errorf("Canonicalize(%q) is not deterministic", in)
		}
	}
}

func TestSectionTypeName(t *testing.T) {
	testCases := []struct {
		base     string
		prefix   bool
		expected string
	}{
		{"custom-content", false, "CustomContent"},
		{"custom-content", true, "CustomContentSection"},
		{"main-section", true, "MainSection"},
		{"main-section", false, "MainSection"},
	}

	for _, tc := range testCases {
		if got := SectionTypeName(tc.base, tc.prefix); got != tc.expected {
			t.Errorf("SectionTypeName(%q, %v): expected %q, got %q", tc.base, tc.prefix, tc.expected, got)
		}
	}
}

func TestBlockTypeName(t *testing.T) {
	testCases := []struct {
		name      string
		blockType string
		prefix    bool
		expected  string
	}{
		{"plain", "text", false, "CustomContentText"},
		{"prefixed", "text", true, "CustomContentTextBlock"},
		{"app", "@app", false, "CustomContentApp"},
		{"app prefixed", "@app", true, "CustomContentAppBlock"},
		{"content prefixed", "content", true, "CustomContentContentBlock"},
		{"trailing block not doubled", "content-block", true, "CustomContentContentBlock"},
		{"trailing block kept", "content-block", false, "CustomContentContentBlock"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BlockTypeName(tc.blockType, "CustomContent", tc.prefix)
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestSectionBaseName(t *testing.T) {
	if got := SectionBaseName("custom-content.liquid", ".liquid"); got != "CustomContent" {
		t.Errorf("expected CustomContent, got %q", got)
	}
}
