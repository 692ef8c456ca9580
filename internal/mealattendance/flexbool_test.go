package mealattendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexBoolTokens(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"TRUE"`, true},
		{`"1"`, true},
		{`"yes"`, true},
		{`"Y"`, true},
		{`"on"`, true},
		{`"false"`, false},
		{`"0"`, false},
		{`"no"`, false},
		{`"N"`, false},
		{`"off"`, false},
		{`""`, false},
		{`1`, true},
		{`0`, false},
		{`null`, false},
		// generic truthiness fallback
		{`"anything else"`, true},
	}

	for _, tc := range cases {
		var b FlexBool
		err := json.Unmarshal([]byte(tc.raw), &b)
		assert.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, bool(b), "input %s", tc.raw)
	}
}

func TestFlexBoolOmittedIsNil(t *testing.T) {
	var req MarkMealRequest
	err := json.Unmarshal([]byte(`{"date":"2025-03-14","breakfast":"yes","dinner":false}`), &req)
	assert.NoError(t, err)

	assert.True(t, req.Breakfast.Bool())
	assert.Nil(t, req.Lunch)
	assert.False(t, req.Dinner.Bool())
}
