package cache

import "testing"

func TestBucketKey_RoundsToThreeDecimals(t *testing.T) {
	got := BucketKey(37.77490001, -122.41940001, 5000)

	if got != "37.775,-122.419,5000" {
		t.Errorf("BucketKey = %q, want 37.775,-122.419,5000", got)
	}
}

func TestBucketKey_NearbyCoordinatesShareBucket(t *testing.T) {
	a := BucketKey(37.77490001, -122.41940001, 5000)
	b := BucketKey(37.7751, -122.4191, 5000)

	if a != b {
		t.Errorf("nearby coordinates produced different buckets: %q vs %q", a, b)
	}
}

func TestBucketKey_DistinctCellsDiffer(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"latitude cell", BucketKey(37.775, -122.419, 5000), BucketKey(37.785, -122.419, 5000)},
		{"longitude cell", BucketKey(37.775, -122.419, 5000), BucketKey(37.775, -122.429, 5000)},
		{"radius", BucketKey(37.775, -122.419, 5000), BucketKey(37.775, -122.419, 1000)},
	}

	for _, tt := range tests {
		if tt.a == tt.b {
			t.Errorf("%s: keys should differ, both %q", tt.name, tt.a)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Subway", "subway"},
		{"  McDonald's  ", "mcdonald's"},
		{"TACO BELL", "taco bell"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
