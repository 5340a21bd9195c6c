package da7281

import "testing"

// Reference actuator from the evaluation hardware: 170 Hz, 6.75 Ω LRA.
var refLRA = LRAConfig{
	ResonantFreqHz: 170,
	ImpedanceOhm:   6.75,
	NomMaxVRMS:     2.5,
	AbsMaxVPeak:    3.5,
	MaxCurrentMA:   350,
}

func TestEncodeLRAReference(t *testing.T) {
	enc := encodeLRA(refLRA)

	// round((1/170)/1.024e-6) = round(5744.48) = 5744 = 0x1670
	if enc.Period != 0x1670 {
		t.Errorf("Period = 0x%04X, want 0x1670", enc.Period)
	}
	// round(6.75 × 1.5) = round(10.125) = 10
	if enc.V2IFactor != 10 {
		t.Errorf("V2IFactor = %d, want 10", enc.V2IFactor)
	}
	// trunc(2500 / 23.4375) = trunc(106.67) = 106
	if enc.NomMax != 106 {
		t.Errorf("NomMax = %d, want 106", enc.NomMax)
	}
	// trunc(3500 / 48.75) = trunc(71.79) = 71
	if enc.AbsMax != 71 {
		t.Errorf("AbsMax = %d, want 71", enc.AbsMax)
	}
	// round(350 / 7.8125) = round(44.8) = 45
	if enc.IMax != 45 {
		t.Errorf("IMax = %d, want 45", enc.IMax)
	}
}

func TestEncodeLRAClampToOne(t *testing.T) {
	// Below the validated range the 16-bit codes could round to zero; the
	// encoder clamps them to the minimum valid value instead.
	enc := encodeLRA(LRAConfig{ResonantFreqHz: 0, ImpedanceOhm: 0.3})
	if enc.Period != 1 {
		t.Errorf("Period for 0 Hz = %d, want clamp to 1", enc.Period)
	}
	if enc.V2IFactor != 1 {
		t.Errorf("V2IFactor for 0.3 ohm = %d, want clamp to 1", enc.V2IFactor)
	}
}

func TestEncodeLRAEightBitClamps(t *testing.T) {
	enc := encodeLRA(LRAConfig{
		ResonantFreqHz: 170,
		ImpedanceOhm:   6.75,
		NomMaxVRMS:     6.0,  // 6000/23.4375 = 256, over the 8-bit ceiling
		AbsMaxVPeak:    12.0, // 12000/48.75 = 246.15
		MaxCurrentMA:   2500, // far over range, must not wrap
	})
	if enc.NomMax != 255 {
		t.Errorf("NomMax = %d, want clamp to 255", enc.NomMax)
	}
	if enc.AbsMax != 246 {
		t.Errorf("AbsMax = %d, want 246", enc.AbsMax)
	}
	if enc.IMax != 255 {
		t.Errorf("IMax = %d, want clamp to 255", enc.IMax)
	}
}

func TestEncodeLRAVoltageTruncates(t *testing.T) {
	// 2.4 V RMS: 2400/23.4375 = 102.4 → 102, not 102.4 rounded.
	enc := encodeLRA(LRAConfig{ResonantFreqHz: 170, ImpedanceOhm: 8, NomMaxVRMS: 2.4, AbsMaxVPeak: 3.5, MaxCurrentMA: 250})
	if enc.NomMax != 102 {
		t.Errorf("NomMax = %d, want 102 (truncated)", enc.NomMax)
	}
}

func TestLRAConfigValidate(t *testing.T) {
	if err := refLRA.Validate(); err != nil {
		t.Fatalf("reference config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*LRAConfig)
		want   error
	}{
		{"freq low", func(c *LRAConfig) { c.ResonantFreqHz = 49 }, ErrBadFrequency},
		{"freq high", func(c *LRAConfig) { c.ResonantFreqHz = 301 }, ErrBadFrequency},
		{"impedance low", func(c *LRAConfig) { c.ImpedanceOhm = 0.5 }, ErrBadImpedance},
		{"impedance high", func(c *LRAConfig) { c.ImpedanceOhm = 50.5 }, ErrBadImpedance},
		{"nominal low", func(c *LRAConfig) { c.NomMaxVRMS = 0.4 }, ErrBadNomMax},
		{"nominal high", func(c *LRAConfig) { c.NomMaxVRMS = 6.5 }, ErrBadNomMax},
		{"absolute low", func(c *LRAConfig) { c.AbsMaxVPeak = 0.9 }, ErrBadAbsMax},
		{"absolute high", func(c *LRAConfig) { c.AbsMaxVPeak = 12.1 }, ErrBadAbsMax},
		{"current low", func(c *LRAConfig) { c.MaxCurrentMA = 49 }, ErrBadCurrent},
		{"current high", func(c *LRAConfig) { c.MaxCurrentMA = 501 }, ErrBadCurrent},
	}
	for _, c := range cases {
		cfg := refLRA
		c.mutate(&cfg)
		if err := cfg.Validate(); err != c.want {
			t.Errorf("%s: err = %v, want %v", c.name, err, c.want)
		}
	}
}
