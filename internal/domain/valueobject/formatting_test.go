package valueobject

import "testing"

func TestValidMonthKey(t *testing.T) {
	t.Run("accepts well-formed keys", func(t *testing.T) {
		for _, key := range []string{"2025-01", "2025-03", "2025-12", "1999-06"} {
			if !ValidMonthKey(key) {
				t.Errorf("expected %q to be valid", key)
			}
		}
	})

	t.Run("rejects malformed keys", func(t *testing.T) {
		for _, key := range []string{"2025-13", "2025-00", "2025-3", "2025", "03-2025", "abcd-ef", "", "2025-031"} {
			if ValidMonthKey(key) {
				t.Errorf("expected %q to be invalid", key)
			}
		}
	})
}

func TestFormatMonthKey(t *testing.T) {
	cases := map[string]string{
		"2025-03": "Martie 2025",
		"2025-01": "Ianuarie 2025",
		"2024-12": "Decembrie 2024",
		"2025-08": "August 2025",
	}
	for key, want := range cases {
		if got := FormatMonthKey(key); got != want {
			t.Errorf("FormatMonthKey(%q) = %q, want %q", key, got, want)
		}
	}

	t.Run("unparseable key is returned unchanged", func(t *testing.T) {
		if got := FormatMonthKey("not-a-month"); got != "not-a-month" {
			t.Errorf("expected passthrough, got %q", got)
		}
	})
}

func TestFormatRON(t *testing.T) {
	cases := map[float64]string{
		0:        "0,00 RON",
		16200:    "16.200,00 RON",
		4050:     "4.050,00 RON",
		-16200:   "-16.200,00 RON",
		1234567:  "1.234.567,00 RON",
		99.5:     "99,50 RON",
		1000.125: "1.000,13 RON",
	}
	for amount, want := range cases {
		if got := FormatRON(amount); got != want {
			t.Errorf("FormatRON(%v) = %q, want %q", amount, got, want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	cases := map[float64]string{
		0.125:  "12.5%",
		0:      "0%",
		1:      "100%",
		-0.25:  "-25%",
		0.3333: "33.3%",
	}
	for ratio, want := range cases {
		if got := FormatPercent(ratio); got != want {
			t.Errorf("FormatPercent(%v) = %q, want %q", ratio, got, want)
		}
	}
}

func TestPercentChange(t *testing.T) {
	t.Run("regular change", func(t *testing.T) {
		if got := PercentChange(100, 125); got != 0.25 {
			t.Errorf("expected 0.25, got %v", got)
		}
		if got := PercentChange(200, 100); got != -0.5 {
			t.Errorf("expected -0.5, got %v", got)
		}
	})

	t.Run("zero previous never divides", func(t *testing.T) {
		if got := PercentChange(0, 0); got != 0 {
			t.Errorf("expected 0 for no movement, got %v", got)
		}
		if got := PercentChange(0, 500); got != 1 {
			t.Errorf("expected 1 for a step up from zero, got %v", got)
		}
		if got := PercentChange(0, -500); got != -1 {
			t.Errorf("expected -1 for a step down from zero, got %v", got)
		}
	})

	t.Run("negative previous uses its magnitude", func(t *testing.T) {
		if got := PercentChange(-100, -50); got != 0.5 {
			t.Errorf("expected 0.5, got %v", got)
		}
	})
}
