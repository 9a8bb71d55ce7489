package seed

import "testing"

func TestComputeCounts_Default(t *testing.T) {
	public, followers, private := computeCounts(10, defaultDistribution)
	if public+followers+private != 10 {
		t.Fatalf("sum mismatch: got %d", public+followers+private)
	}
	if public != 5 || followers != 3 || private != 2 {
		t.Fatalf("unexpected default counts: public=%d, followers=%d, private=%d", public, followers, private)
	}
}

func TestComputeCounts_Journal(t *testing.T) {
	d, ok := VisibilityDistributions["journal"]
	if !ok {
		t.Fatalf("journal distribution not found")
	}
	public, followers, private := computeCounts(10, d)
	if public+followers+private != 10 {
		t.Fatalf("sum mismatch: got %d", public+followers+private)
	}
	if public != 1 || followers != 2 || private != 7 {
		t.Fatalf("unexpected journal counts: public=%d, followers=%d, private=%d", public, followers, private)
	}
}

func TestComputeCounts_RemainderGoesPublic(t *testing.T) {
	public, followers, private := computeCounts(7, defaultDistribution)
	if public+followers+private != 7 {
		t.Fatalf("sum mismatch: got %d", public+followers+private)
	}
	if public < followers || public < private {
		t.Fatalf("expected public to absorb remainder: public=%d, followers=%d, private=%d", public, followers, private)
	}
}
