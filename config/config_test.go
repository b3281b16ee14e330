package config_test

import (
	"testing"

	"chess-engine/config"
)

func TestDefaultUsesSentinelsForUnsetClockFields(t *testing.T) {
	l := config.Default()
	if l.WtimeMs != -1 || l.BtimeMs != -1 || l.WincMs != -1 || l.BincMs != -1 {
		t.Fatalf("expected clock fields to default to -1 sentinels, got %+v", l)
	}
	if l.Depth != -1 || l.Movestogo != -1 || l.Mate != -1 || l.MovetimeMs != -1 || l.Nodes != -1 {
		t.Fatalf("expected unset limit fields to default to -1 sentinels, got %+v", l)
	}
	if l.MultiPV != 1 {
		t.Fatalf("expected MultiPV to default to 1, got %d", l.MultiPV)
	}
}

func TestDefaultLoadsKnobDefaults(t *testing.T) {
	l := config.Default()
	if !l.EnableNullMove || !l.EnableStaticFutility || !l.EnableRazoring || !l.EnableMultiCut {
		t.Fatalf("expected the pruning toggles to default to enabled, got %+v", l)
	}
	if l.NullMinDepth != 2 || l.NullBaseReduction != 2 || l.NullDepthScale != 4 {
		t.Fatalf("unexpected null-move knob defaults: %+v", l)
	}
	if l.TTSizeMB != 256 {
		t.Fatalf("expected the default TT size to be 256 MB, got %d", l.TTSizeMB)
	}
	if !l.EnableNullVerification || l.NullVerifyDepth != 1 {
		t.Fatalf("unexpected null-move verification defaults: %+v", l)
	}
	if !l.EnableSingularExtension || l.SingularDepth != 8 || l.SingularDepthMargin != 3 || l.SingularMargin != 64 {
		t.Fatalf("unexpected singular extension defaults: %+v", l)
	}
}

func TestFromEnvironmentOverridesKnobsFromEnv(t *testing.T) {
	t.Setenv("BBY_TT_SIZE_MB", "64")
	t.Setenv("BBY_NULL_MIN_DEPTH", "3")

	l, err := config.FromEnvironment()
	if err != nil {
		t.Fatalf("FromEnvironment: %v", err)
	}
	if l.TTSizeMB != 64 {
		t.Fatalf("expected BBY_TT_SIZE_MB to override TTSizeMB, got %d", l.TTSizeMB)
	}
	if l.NullMinDepth != 3 {
		t.Fatalf("expected BBY_NULL_MIN_DEPTH to override NullMinDepth, got %d", l.NullMinDepth)
	}
	if l.WtimeMs != -1 {
		t.Fatalf("expected fields with no env var set to keep their sentinel default, got %d", l.WtimeMs)
	}
}
