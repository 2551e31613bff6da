package job_test

import (
	"testing"

	"go-shopops/internal/job"

	"github.com/stretchr/testify/assert"
)

func TestParsePartsField_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		parsed := job.ParsePartsField(raw)

		assert.Equal(t, job.PartsNone, parsed.Kind)
		assert.False(t, parsed.Malformed)
		assert.Empty(t, parsed.Lines)
	}
}

func TestParsePartsField_LegacyText(t *testing.T) {
	parsed := job.ParsePartsField("모터:2, 필터:1,벨트:3")

	assert.Equal(t, job.PartsLegacy, parsed.Kind)
	assert.False(t, parsed.Malformed)
	assert.Equal(t, []job.PartLine{
		{Name: "모터", Quantity: 2, UnitPrice: job.PriceUnknown},
		{Name: "필터", Quantity: 1, UnitPrice: job.PriceUnknown},
		{Name: "벨트", Quantity: 3, UnitPrice: job.PriceUnknown},
	}, parsed.Lines)
}

func TestParsePartsField_LegacyNameOnlyDefaultsQuantityOne(t *testing.T) {
	parsed := job.ParsePartsField("모터")

	assert.Equal(t, job.PartsLegacy, parsed.Kind)
	assert.Equal(t, int64(1), parsed.Lines[0].Quantity)
	assert.Equal(t, job.PriceUnknown, parsed.Lines[0].UnitPrice)
}

func TestParsePartsField_Structured(t *testing.T) {
	parsed := job.ParsePartsField(`[{"name":"모터","quantity":2,"price":15000},{"name":"필터","price":3000}]`)

	assert.Equal(t, job.PartsStructured, parsed.Kind)
	assert.Len(t, parsed.Lines, 2)
	assert.Equal(t, int64(15000), parsed.Lines[0].UnitPrice)
	// missing quantity defaults to 1
	assert.Equal(t, int64(1), parsed.Lines[1].Quantity)
}

func TestParsePartsField_Malformed(t *testing.T) {
	cases := []string{
		`[{"name":`,
		"모터:abc",
		"모터:-1",
		":2",
		",,,",
	}

	for _, raw := range cases {
		parsed := job.ParsePartsField(raw)

		assert.Equal(t, job.PartsNone, parsed.Kind, "raw=%q", raw)
		assert.True(t, parsed.Malformed, "raw=%q", raw)
		assert.Empty(t, parsed.Lines, "raw=%q", raw)
	}
}

func TestPartsField_EstimatedCost(t *testing.T) {
	priceMap := map[string]int64{"모터": 15000, "필터": 3000}

	legacy := job.ParsePartsField("모터:2,필터:1,없는부품:5")
	assert.Equal(t, int64(33000), legacy.EstimatedCost(priceMap))

	structured := job.ParsePartsField(`[{"name":"모터","quantity":2,"price":10000},{"name":"필터","quantity":1,"price":-1}]`)
	// embedded price wins, PriceUnknown falls back to the catalog
	assert.Equal(t, int64(23000), structured.EstimatedCost(priceMap))

	malformed := job.ParsePartsField("모터:zzz")
	assert.Equal(t, int64(0), malformed.EstimatedCost(priceMap))
}

func TestPartsField_ScanRoundTrip(t *testing.T) {
	var p job.PartsField
	assert.NoError(t, p.Scan("모터:2"))
	assert.Equal(t, job.PartsLegacy, p.Kind)

	v, err := p.Value()
	assert.NoError(t, err)
	assert.Equal(t, "모터:2", v)

	var fromBytes job.PartsField
	assert.NoError(t, fromBytes.Scan([]byte(`[{"name":"모터","quantity":1,"price":100}]`)))
	assert.Equal(t, job.PartsStructured, fromBytes.Kind)

	var fromNil job.PartsField
	assert.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, job.PartsNone, fromNil.Kind)

	assert.Error(t, fromNil.Scan(42))
}

func TestJob_WorkerNames(t *testing.T) {
	j := job.Job{Worker: "김철수, 이영희 ,박민수"}
	assert.Equal(t, []string{"김철수", "이영희", "박민수"}, j.WorkerNames())
	assert.Equal(t, "김철수", j.TeamLead())

	empty := job.Job{Worker: ""}
	assert.Equal(t, []string{""}, empty.WorkerNames())
}
