package color

import (
	"math"
	"testing"
)

func TestEncodeCoverageEndpoints(t *testing.T) {
	tests := []struct {
		in, encode, decode uint8
	}{
		{0, 0, 0},
		{255, 255, 255},
	}
	for _, tt := range tests {
		if got := EncodeCoverage(tt.in); got != tt.encode {
			t.Errorf("EncodeCoverage(%d) = %d, want %d", tt.in, got, tt.encode)
		}
		if got := DecodeCoverage(tt.in); got != tt.decode {
			t.Errorf("DecodeCoverage(%d) = %d, want %d", tt.in, got, tt.decode)
		}
	}
}

func TestEncodeCoverageMidpoint(t *testing.T) {
	// Linear 0.5 encodes to ~0.735 in sRGB (188), not 128.
	if got := EncodeCoverage(128); got != 188 {
		t.Errorf("EncodeCoverage(128) = %d, want 188", got)
	}
	if got := DecodeCoverage(188); got < 127 || got > 129 {
		t.Errorf("DecodeCoverage(188) = %d, want ~128", got)
	}
}

func TestEncodeCoverageMonotonic(t *testing.T) {
	for i := 1; i < 256; i++ {
		if EncodeCoverage(uint8(i)) < EncodeCoverage(uint8(i-1)) {
			t.Fatalf("EncodeCoverage not monotonic at %d", i)
		}
		if DecodeCoverage(uint8(i)) < DecodeCoverage(uint8(i-1)) {
			t.Fatalf("DecodeCoverage not monotonic at %d", i)
		}
	}
}

// TestRoundTrip checks encode then decode stays within the byte
// quantization error of the steep low end of the curve.
func TestRoundTrip(t *testing.T) {
	maxError := 0
	for i := 0; i < 256; i++ {
		got := int(DecodeCoverage(EncodeCoverage(uint8(i))))
		diff := got - i
		if diff < 0 {
			diff = -diff
		}
		maxError = max(maxError, diff)
	}
	if maxError > 1 {
		t.Errorf("encode/decode round trip error %d exceeds 1", maxError)
	}
}

func TestTable(t *testing.T) {
	tests := []struct {
		name            string
		correct, remove bool
		in, want        uint8
		isNil           bool
	}{
		{name: "none", isNil: true},
		{name: "correct", correct: true, in: 128, want: 188},
		{name: "remove", remove: true, in: 188, want: DecodeCoverage(188)},
		{name: "both is identity", correct: true, remove: true, in: 128, want: 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Table(tt.correct, tt.remove)
			if tt.isNil {
				if table != nil {
					t.Error("Table(false, false) != nil")
				}
				return
			}
			if got := table[tt.in]; got != tt.want {
				t.Errorf("Table(%v, %v)[%d] = %d, want %d", tt.correct, tt.remove, tt.in, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	buf := []byte{0, 128, 255}
	Apply(nil, buf)
	if buf[1] != 128 {
		t.Errorf("Apply(nil) modified buffer: %v", buf)
	}
	Apply(Table(true, false), buf)
	if buf[0] != 0 || buf[1] != 188 || buf[2] != 255 {
		t.Errorf("Apply(encode) = %v, want [0 188 255]", buf)
	}
}

func TestTransferFunctionsInverse(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := float64(i) / 100
		back := SRGBToLinear(LinearToSRGB(v))
		if math.Abs(back-v) > 1e-9 {
			t.Errorf("SRGBToLinear(LinearToSRGB(%v)) = %v", v, back)
		}
	}
}
