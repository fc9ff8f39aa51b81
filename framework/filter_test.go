package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkID(name string) TestID {
	return TestID{Path: []string{name}}
}

func TestRegexFilters(t *testing.T) {
	var none RegexFilters
	assert.True(t, none.AsFilter(checkID("Application Loads")))
	assert.False(t, none.IsDefined())

	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("Assets|Components"))
	require.NoError(t, f.MustNotMatch.Set("^React"))
	assert.True(t, f.AsFilter(checkID("Static Assets Accessible")))
	assert.False(t, f.AsFilter(checkID("React Components Served")))
	assert.False(t, f.AsFilter(checkID("Application Loads")))
	assert.True(t, f.IsDefined())
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var r RegexList
	assert.Error(t, r.Set("("))
	assert.False(t, r.IsDefined())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("Assets"))
	require.NoError(t, f.MustMatch.Set("Health"))
	PrintFilterDescription(&buf, f)
	assert.Contains(t, buf.String(), `skip any not matching "Assets" or "Health"`)
	assert.NotContains(t, buf.String(), "skip any matching")
}
