package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferArea(t *testing.T) {
	tests := []struct {
		name    string
		answers AnswerMap
		want    float64
	}{
		{"length and width", AnswerMap{"length": float64(4), "width": float64(2)}, 8},
		{"dutch keys", AnswerMap{"lengte": float64(4), "breedte": float64(2.5)}, 10},
		{"length and height", AnswerMap{"lengte": float64(3), "hoogte": float64(2)}, 6},
		{"width and height", AnswerMap{"breedte": float64(3), "hoogte": float64(2)}, 6},
		{"length times width wins over height", AnswerMap{"lengte": float64(4), "breedte": float64(2), "hoogte": float64(10)}, 8},
		{"single dimension", AnswerMap{"lengte": float64(4)}, 0},
		{"no dimensions", AnswerMap{"kleur": "rood"}, 0},
		{"zero dimension ignored", AnswerMap{"lengte": float64(0), "breedte": float64(2)}, 0},
		{"substring match", AnswerMap{"carport_lengte": float64(5), "carport_breedte": float64(3)}, 15},
		{"numeric strings not coerced", AnswerMap{"lengte": "4", "breedte": "2"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferArea(tt.answers))
		})
	}
}

func TestInferLength(t *testing.T) {
	assert.Equal(t, 6.0, inferLength(AnswerMap{"lengte": float64(6)}))
	assert.Equal(t, 6.0, inferLength(AnswerMap{"length": float64(6)}))
	assert.Equal(t, 6.0, inferLength(AnswerMap{"totale_lengte": float64(6)}))
	assert.Zero(t, inferLength(AnswerMap{"breedte": float64(6)}))
}

// Exact key matches win over substring matches regardless of map order.
func TestDimensionValue_ExactBeforeSubstring(t *testing.T) {
	answers := AnswerMap{
		"lengte":        float64(4),
		"andere_lengte": float64(9),
	}
	assert.Equal(t, 4.0, inferLength(answers))
}

func TestIsDimensionKey(t *testing.T) {
	assert.True(t, isDimensionKey("lengte"))
	assert.True(t, isDimensionKey("carport_breedte"))
	assert.True(t, isDimensionKey("Height"))
	assert.False(t, isDimensionKey("aantal_palen"))
}
