// Package config holds the tunable search knobs and engine-wide settings,
// loaded from the process environment via github.com/kelseyhightower/envconfig.
// Field names and defaults mirror the engine's searchparams.h layout: one
// struct carries both UCI-style time/node limits and the pruning/extension
// toggles the search driver consults at every node.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Limits carries a single search invocation's time/node/depth controls plus
// every pruning/extension knob the driver reads. Front ends (UCI, tests,
// cmd/engine) populate the time/node/depth fields per request; the knob
// fields default from the environment and are rarely touched per-call.
type Limits struct {
	MovetimeMs int64 `ignored:"true"`
	Nodes      int64 `ignored:"true"`
	Depth      int16 `ignored:"true"`
	WtimeMs    int64 `ignored:"true"`
	BtimeMs    int64 `ignored:"true"`
	WincMs     int64 `ignored:"true"`
	BincMs     int64 `ignored:"true"`
	Movestogo  int   `ignored:"true"`
	Mate       int   `ignored:"true"`
	MultiPV    int   `ignored:"true"`
	Infinite   bool  `ignored:"true"`

	LMRMinDepth int `envconfig:"LMR_MIN_DEPTH" default:"2"`
	LMRMinMove  int `envconfig:"LMR_MIN_MOVE" default:"2"`

	EnableStaticFutility  bool `envconfig:"ENABLE_STATIC_FUTILITY" default:"true"`
	StaticFutilityMargin  int  `envconfig:"STATIC_FUTILITY_MARGIN" default:"128"`
	StaticFutilityDepth   int  `envconfig:"STATIC_FUTILITY_DEPTH" default:"1"`

	EnableRazoring bool `envconfig:"ENABLE_RAZORING" default:"true"`
	RazorMargin    int  `envconfig:"RAZOR_MARGIN" default:"256"`
	RazorDepth     int  `envconfig:"RAZOR_DEPTH" default:"1"`

	EnableMultiCut     bool `envconfig:"ENABLE_MULTI_CUT" default:"true"`
	MultiCutMinDepth   int  `envconfig:"MULTI_CUT_MIN_DEPTH" default:"4"`
	MultiCutReduction  int  `envconfig:"MULTI_CUT_REDUCTION" default:"2"`
	MultiCutCandidates int  `envconfig:"MULTI_CUT_CANDIDATES" default:"8"`
	MultiCutThreshold  int  `envconfig:"MULTI_CUT_THRESHOLD" default:"3"`

	HistoryWeightScale             int `envconfig:"HISTORY_WEIGHT_SCALE" default:"100"`
	CounterHistoryWeightScale      int `envconfig:"COUNTER_HISTORY_WEIGHT_SCALE" default:"50"`
	ContinuationHistoryWeightScale int `envconfig:"CONTINUATION_HISTORY_WEIGHT_SCALE" default:"50"`

	EnableNullMove    bool `envconfig:"ENABLE_NULL_MOVE" default:"true"`
	NullMinDepth      int  `envconfig:"NULL_MIN_DEPTH" default:"2"`
	NullBaseReduction int  `envconfig:"NULL_BASE_REDUCTION" default:"2"`
	NullDepthScale    int  `envconfig:"NULL_DEPTH_SCALE" default:"4"`
	NullEvalMargin    int  `envconfig:"NULL_EVAL_MARGIN" default:"120"`

	// EnableNullVerification and NullVerifyDepth gate the zugzwang safeguard
	// on null-move pruning: once a null-move search fails high at depth ≥
	// NullVerifyDepth, re-search the real position at the same reduced depth
	// with the null-move rule itself disabled before trusting the cutoff.
	EnableNullVerification bool `envconfig:"ENABLE_NULL_VERIFICATION" default:"true"`
	NullVerifyDepth        int  `envconfig:"NULL_VERIFICATION_DEPTH" default:"1"`

	EnableRecaptureExtension bool `envconfig:"ENABLE_RECAPTURE_EXTENSION" default:"true"`
	EnableCheckExtension     bool `envconfig:"ENABLE_CHECK_EXTENSION" default:"true"`
	RecaptureExtensionDepth  int  `envconfig:"RECAPTURE_EXTENSION_DEPTH" default:"4"`
	CheckExtensionDepth      int  `envconfig:"CHECK_EXTENSION_DEPTH" default:"3"`

	// EnableSingularExtension, SingularDepth, SingularDepthMargin and
	// SingularMargin drive the singular-extension probe: at a node at least
	// SingularDepth deep, a TT move backed by a lower-bound entry no more
	// than SingularDepthMargin plies shallower than the current node is
	// re-tested by searching every other move at reduced
	// depth against singular_beta = tt_score − SingularMargin. If none of
	// them fail high, the TT move is singular and its own search gets +1
	// depth.
	EnableSingularExtension bool `envconfig:"ENABLE_SINGULAR_EXTENSION" default:"true"`
	SingularDepth           int  `envconfig:"SINGULAR_DEPTH" default:"8"`
	SingularDepthMargin     int  `envconfig:"SINGULAR_DEPTH_MARGIN" default:"3"`
	SingularMargin          int  `envconfig:"SINGULAR_MARGIN" default:"64"`

	TTSizeMB int `envconfig:"TT_SIZE_MB" default:"256"`

	// Debug gates an extra position.IsSane() re-derivation check at every
	// search node, the release/debug split the original engine's
	// BBY_ASSERT/bby_trap macros drew at compile time. Off by default: the
	// check is too costly to run unconditionally.
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// SearchKnobs is a small subset of Limits surfaced as independent on/off
// switches, mirroring the engine's own SearchKnobs POD — separated out for
// front ends that want to flip a single heuristic without touching the rest
// of Limits.
type SearchKnobs struct {
	EnableNullMove bool `envconfig:"ENABLE_NULL_MOVE" default:"true"`
	EnableLMR      bool `envconfig:"ENABLE_LMR" default:"true"`
}

// Default returns a Limits populated with the engine's built-in defaults,
// with any BBY_-prefixed environment variables applied on top by
// envconfig (a processing error is ignored), and the per-search limits
// reset: -1 ("unset") for depth, time and node limits, 1 for MultiPV.
func Default() Limits {
	var l Limits
	_ = envconfig.Process("bby", &l)
	l.Depth = -1
	l.Movestogo = -1
	l.Mate = -1
	l.MultiPV = 1
	l.MovetimeMs = -1
	l.Nodes = -1
	l.WtimeMs = -1
	l.BtimeMs = -1
	l.WincMs = -1
	l.BincMs = -1
	return l
}

// FromEnvironment loads Limits from environment variables prefixed "BBY_",
// falling back to the defaults above for anything unset.
func FromEnvironment() (Limits, error) {
	l := Default()
	if err := envconfig.Process("bby", &l); err != nil {
		return l, errors.Wrap(err, "config: processing environment")
	}
	return l, nil
}
