package data_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wlattner/furia/data"
)

func TestParseCSVClassFirstNominal(t *testing.T) {
	r := strings.NewReader(`"class","a","b"
"yes",0,1
"no",1,0
"yes",0,0
`)
	instSet, err := data.ParseCSV(r, data.DefaultParseOptions())
	assert.NoError(t, err)

	assert.Len(t, instSet.Schema, 3)
	assert.Equal(t, 2, instSet.ClassAttr)
	assert.Equal(t, data.Numeric, instSet.Schema[0].Kind)
	assert.Equal(t, data.Nominal, instSet.Schema[2].Kind)
	assert.Len(t, instSet.Instances, 3)
	assert.Equal(t, "yes", instSet.Schema[2].ValueName(instSet.Instances[0].Class))
}

func TestParseCSVNumericColumn(t *testing.T) {
	r := strings.NewReader(`"class","x"
"a",0.1
"b",0.9
"a",0.2
`)
	instSet, err := data.ParseCSV(r, data.DefaultParseOptions())
	assert.NoError(t, err)

	assert.Equal(t, data.Numeric, instSet.Schema[0].Kind)
	assert.Equal(t, 0.1, instSet.Instances[0].X[0])
}

func TestParseCSVIntegerCodedClass(t *testing.T) {
	r := strings.NewReader(`"class","a","b"
0,0,1
1,1,0
0,0,0
`)
	instSet, err := data.ParseCSV(r, data.DefaultParseOptions())
	assert.NoError(t, err)

	assert.Equal(t, data.Nominal, instSet.Schema[2].Kind)
	assert.Equal(t, 2, instSet.NumClasses())
	assert.NotEmpty(t, instSet.Apriori())
	assert.GreaterOrEqual(t, instSet.Instances[0].Class, 0)
}

func TestParseCSVMissingToken(t *testing.T) {
	r := strings.NewReader(`"class","x"
"a",0.1
"b",?
`)
	instSet, err := data.ParseCSV(r, data.DefaultParseOptions())
	assert.NoError(t, err)

	assert.True(t, instSet.Instances[1].IsMissing(0))
}

func TestParseCSVNoHeader(t *testing.T) {
	r := strings.NewReader(`a,0.1
b,0.9
`)
	instSet, err := data.ParseCSV(r, data.DefaultParseOptions())
	assert.NoError(t, err)
	assert.Equal(t, "X2", instSet.Schema[0].Name)
}

func TestParseCSVEmptyInput(t *testing.T) {
	_, err := data.ParseCSV(strings.NewReader(""), data.DefaultParseOptions())
	assert.ErrorIs(t, err, data.ErrEmptyInput)
}

func TestParseCSVInconsistentColumns(t *testing.T) {
	r := strings.NewReader(`"class","x"
"a",0.1,0.2
`)
	_, err := data.ParseCSV(r, data.DefaultParseOptions())
	assert.Error(t, err)
}
