package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayMonth(t *testing.T) {
	cases := []struct {
		spec    string
		day     int
		month   time.Month
		wantErr bool
	}{
		{spec: "01/10", day: 1, month: time.October},
		{spec: "1/10", day: 1, month: time.October},
		{spec: " 24/12 ", day: 24, month: time.December},
		{spec: "29/02", day: 29, month: time.February},
		{spec: "31/04", wantErr: true},
		{spec: "32/01", wantErr: true},
		{spec: "00/01", wantErr: true},
		{spec: "10/13", wantErr: true},
		{spec: "10/0", wantErr: true},
		{spec: "1-10", wantErr: true},
		{spec: "aa/bb", wantErr: true},
		{spec: "1/2/3", wantErr: true},
		{spec: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			d, m, err := ParseDayMonth(tc.spec)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedRule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.day, d)
			assert.Equal(t, tc.month, m)
		})
	}
}

func TestRuleSet_Fixed(t *testing.T) {
	var rs RuleSet
	require.NoError(t, rs.AddFixed(FixedRule{Day: 1, Month: time.January, Name: "new year"}))
	require.NoError(t, rs.AddFixed(FixedRule{Day: 1, Month: time.January, Name: "dup"}))
	require.Error(t, rs.AddFixed(FixedRule{Day: 30, Month: time.February}))

	r, ok := rs.MatchFixed(time.Date(1999, 1, 1, 13, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "new year", r.Name)
	assert.Equal(t, KindFixed, r.Kind)

	_, ok = rs.MatchFixed(time.Date(1999, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
	assert.Len(t, rs.FixedRules(), 2)
}

func TestRuleSet_OneOff(t *testing.T) {
	var rs RuleSet
	require.NoError(t, rs.AddOneOff(OneOffRule{Year: 2018, Month: time.October, Day: 30}))
	require.Error(t, rs.AddOneOff(OneOffRule{Year: 2019, Month: time.February, Day: 29}))

	_, ok := rs.MatchOneOff(time.Date(2018, 10, 30, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	_, ok = rs.MatchOneOff(time.Date(2019, 10, 30, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
	assert.Len(t, rs.OneOffRules(), 1)
}

func TestRuleSet_CopiesAreDetached(t *testing.T) {
	var rs RuleSet
	rs.AddFeastRelative(FeastRule{Offset: -2, Name: "friday"})

	rules := rs.FeastRules()
	rules[0].Offset = 5

	assert.Equal(t, -2, rs.FeastRules()[0].Offset)
}
