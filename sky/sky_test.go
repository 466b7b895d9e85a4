package sky

import "testing"

func TestAdvanceWraps(t *testing.T) {
	c := New(0.9, 100)
	c.Advance(20) // 0.9 + 0.2 -> 0.1

	if c.Time < 0.09 || c.Time > 0.11 {
		t.Errorf("expected time ~0.1 after wrap, got %f", c.Time)
	}
}

func TestNoonIsBrighterThanMidnight(t *testing.T) {
	noon := New(0.5, 100).SkyColor(0)
	midnight := New(0.0, 100).SkyColor(0)

	if noon.B <= midnight.B || noon.R <= midnight.R {
		t.Errorf("noon %+v not brighter than midnight %+v", noon, midnight)
	}
}

func TestOvercastDarkensSky(t *testing.T) {
	c := New(0.5, 100)

	clear := c.SkyColor(0)
	storm := c.SkyColor(1)

	if storm.R >= clear.R || storm.G >= clear.G || storm.B >= clear.B {
		t.Errorf("overcast sky %+v not darker than clear sky %+v", storm, clear)
	}
}

func TestSunElevationExtremes(t *testing.T) {
	if e := New(0.5, 100).SunElevation(); e < 0.99 {
		t.Errorf("noon sun elevation %f, want ~1", e)
	}
	if e := New(0.0, 100).SunElevation(); e > -0.99 {
		t.Errorf("midnight sun elevation %f, want ~-1", e)
	}
}

func TestAmbientHasNightFloor(t *testing.T) {
	if a := New(0.0, 100).Ambient(); a < 0.15 {
		t.Errorf("ambient %f below the night floor", a)
	}
	if a := New(0.5, 100).Ambient(); a < 0.99 {
		t.Errorf("noon ambient %f, want ~1", a)
	}
}

func TestSkyColorIsContinuousAcrossKeyframes(t *testing.T) {
	// Sampling either side of a keyframe boundary must not jump.
	for _, kf := range keyframes {
		before := sampleKeyframes(wrap(kf.at - 0.001))
		after := sampleKeyframes(wrap(kf.at + 0.001))
		if absDiff(before.R, after.R) > 16 || absDiff(before.G, after.G) > 16 || absDiff(before.B, after.B) > 16 {
			t.Errorf("discontinuity at keyframe %f: %+v vs %+v", kf.at, before, after)
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
