package placement

import "testing"

func TestFromFingerprint(t *testing.T) {
	for _, test := range []struct {
		fp   string
		want Seed
	}{
		{"1a2b3c4d5e6f7788", 0x1a2b3c4d},
		{"1a2b3c4d", 0x1a2b3c4d},
		{"ffffffffffff", 0xffffffff},
		{"00000000", 0},
		{"abc", 0xabc},
		{"", FallbackSeed},
		{"zz2b3c4d", FallbackSeed},
		{"-1234567", FallbackSeed},
	} {
		if got := FromFingerprint(test.fp); got != test.want {
			t.Errorf("FromFingerprint(%q) = %d, want %d", test.fp, got, test.want)
		}
	}
}

func TestScalar(t *testing.T) {
	s := Seed(12345)
	// stars: x = (seed * (i+1) * 7) % 400
	if got := s.Scalar(1, 7, 400); got != 12345*7%400 {
		t.Errorf("unexpected %d", got)
	}
	if got := s.Scalar(0, 11, 180); got != 0 {
		t.Errorf("index 0 should give 0, got %d", got)
	}
	if got := s.Scalar(3, 5, 0); got != 0 {
		t.Errorf("zero bound should give 0, got %d", got)
	}
	// negative bound, as happens for lava on very small canvases
	if got := s.Scalar(1, 11, -10); got != -5 {
		t.Errorf("floor modulo: got %d, want -5", got)
	}
}

func TestLargeSeedDoesNotOverflow(t *testing.T) {
	s := Seed(0xffffffff)
	got := s.Scalar(40, 23, 400)
	want := int((uint64(0xffffffff) * 40 * 23) % 400)
	if got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestDeterminism(t *testing.T) {
	s := FromFingerprint("deadbeef")
	for i := 0; i < 50; i++ {
		x1, y1 := s.Point(i+1, 17, 23, 400, 400)
		x2, y2 := s.Point(i+1, 17, 23, 400, 400)
		if x1 != x2 || y1 != y2 {
			t.Fatalf("placement is not deterministic at %d", i)
		}
		if x1 < 0 || x1 >= 400 || y1 < 0 || y1 >= 400 {
			t.Fatalf("point out of bounds: %d, %d", x1, y1)
		}
	}
}

func TestOffset(t *testing.T) {
	s := Seed(7)
	for i := 0; i < 20; i++ {
		o := s.Offset(i, 13, 160)
		if o < -80 || o >= 80 {
			t.Errorf("offset %d out of [-80, 80)", o)
		}
	}
	if got := s.Offset(0, 13, 160); got != -80 {
		t.Errorf("index 0 should sit at -span/2, got %d", got)
	}
}

func TestAdd(t *testing.T) {
	s := Seed(10)
	if s.Add(2, 3) != 0 || s.Add(3, 3) != 1 {
		t.Error("unexpected modulo")
	}
}
