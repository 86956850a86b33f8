package validators

import "testing"

func TestCheckNumber(t *testing.T) {
	testCases := []struct {
		Name   string
		Number string
		Valid  bool
	}{
		{"Valid number #1", "79927398713", true},
		{"Valid number with spaces #2", "7992 7398 713", true},
		{"Invalid checksum #3", "79927398714", false},
		{"Not a number #4", "7992739871a", false},
		{"Empty string #5", "", false},
		{"Spaces only #6", "   ", false},
		{"Single zero #7", "0", true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := CheckNumber(tc.Number); got != tc.Valid {
				t.Errorf("CheckNumber(%q) = %v, want %v", tc.Number, got, tc.Valid)
			}
		})
	}
}
