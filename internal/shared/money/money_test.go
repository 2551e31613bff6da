package money_test

import (
	"testing"

	"go-shopops/internal/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestRound_HalfUp(t *testing.T) {
	assert.Equal(t, int64(1), money.Round(0.5))
	assert.Equal(t, int64(0), money.Round(0.4999))
	assert.Equal(t, int64(2), money.Round(1.5))
	assert.Equal(t, int64(0), money.Round(-0.5))
	assert.Equal(t, int64(-1), money.Round(-0.51))
	assert.Equal(t, int64(22000), money.Round(100000*0.22))
}

func TestSplit_ClampsToOne(t *testing.T) {
	assert.Equal(t, float64(90000), money.Split(90000, 0))
	assert.Equal(t, float64(30000), money.Split(90000, 3))
}

func TestApplyRate(t *testing.T) {
	assert.Equal(t, float64(70000), money.ApplyRate(100000, 70))
	assert.Equal(t, float64(0), money.ApplyRate(0, 70))
}
