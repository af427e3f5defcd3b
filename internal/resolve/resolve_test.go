package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueUserEditWinsOverAI(t *testing.T) {
	src := Sources{
		UserEdits: map[string]any{"issues": "standing water in north excavation"},
		AI:        map[string]any{"issues_delays": "none reported"},
	}
	f := Field{Path: "issues", AIPath: "issues_delays"}
	assert.Equal(t, "standing water in north excavation", Value(src, f))
}

func TestValueAIWinsOverReport(t *testing.T) {
	src := Sources{
		AI:     map[string]any{"work_summary": "placed 40yd structural concrete"},
		Report: map[string]any{"summary": "concrete"},
	}
	f := Field{Path: "summary", AIPath: "work_summary"}
	assert.Equal(t, "placed 40yd structural concrete", Value(src, f))
}

func TestValueLegacyAIPathFallback(t *testing.T) {
	src := Sources{
		AI: map[string]any{"summary": "legacy summary text"},
	}
	f := Field{Path: "summary", AIPath: "work_summary", LegacyAIPath: "summary"}
	assert.Equal(t, "legacy summary text", Value(src, f))
}

func TestValueReportTierAndFallback(t *testing.T) {
	src := Sources{
		Report: map[string]any{"overview": map[string]any{"crew": float64(12)}},
	}
	assert.Equal(t, float64(12), Value(src, Field{Path: "overview.crew", Fallback: float64(0)}))
	assert.Equal(t, "N/A", Value(src, Field{Path: "overview.visitors", Fallback: "N/A"}))
}

func TestValueZeroAndFalseAreDefined(t *testing.T) {
	src := Sources{
		UserEdits: map[string]any{"delays.hours": float64(0), "safety.incident": false},
		AI:        map[string]any{"delays": map[string]any{"hours": float64(3)}},
	}
	assert.Equal(t, float64(0), Value(src, Field{Path: "delays.hours", AIPath: "delays.hours"}))
	assert.Equal(t, false, Value(src, Field{Path: "safety.incident", Fallback: true}))
}

func TestValueNilAndEmptyStringAreNotDefined(t *testing.T) {
	src := Sources{
		UserEdits: map[string]any{"summary": ""},
		AI:        map[string]any{"work_summary": nil},
		Report:    map[string]any{"summary": "from the report"},
	}
	f := Field{Path: "summary", AIPath: "work_summary"}
	assert.Equal(t, "from the report", Value(src, f))
}

func TestValueJoinsArraysWithNewlines(t *testing.T) {
	src := Sources{
		AI: map[string]any{"issues_delays": []any{"rain delay 2h", "late steel delivery"}},
	}
	f := Field{Path: "issues", AIPath: "issues_delays"}
	assert.Equal(t, "rain delay 2h\nlate steel delivery", Value(src, f))
}

func TestValueEmptyArrayLosesLikeEmptyString(t *testing.T) {
	src := Sources{
		AI:     map[string]any{"issues_delays": []any{}},
		Report: map[string]any{"issues": "wind hold on crane picks"},
	}
	f := Field{Path: "issues", AIPath: "issues_delays"}
	assert.Equal(t, "wind hold on crane picks", Value(src, f))
}

func TestValueArrayJoinAppliesAtUserTier(t *testing.T) {
	src := Sources{
		UserEdits: map[string]any{"issues": []string{"a", "b"}},
	}
	assert.Equal(t, "a\nb", Value(src, Field{Path: "issues"}))
}

func TestValueIdempotentForSameInputs(t *testing.T) {
	src := Sources{
		UserEdits: map[string]any{"summary": "final wording"},
		AI:        map[string]any{"work_summary": "ai wording"},
	}
	f := Field{Path: "summary", AIPath: "work_summary"}
	first := Value(src, f)
	second := Value(src, f)
	assert.Equal(t, first, second)
}

func TestTextRendersNonStrings(t *testing.T) {
	src := Sources{UserEdits: map[string]any{"crew": float64(8)}}
	assert.Equal(t, "8", Text(src, Field{Path: "crew"}))
	assert.Equal(t, "", Text(src, Field{Path: "missing"}))
}

func TestLookupDotPath(t *testing.T) {
	doc := map[string]any{
		"overview": map[string]any{
			"weather": map[string]any{"highTemp": "54"},
		},
	}
	assert.Equal(t, "54", Lookup(doc, "overview.weather.highTemp"))
	assert.Nil(t, Lookup(doc, "overview.weather.missing"))
	assert.Nil(t, Lookup(doc, "overview.weather.highTemp.deeper"))
	assert.Nil(t, Lookup(nil, "overview"))
}
