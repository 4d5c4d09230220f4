package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUrgentFlag_AcceptsBoolAndLegacySentinels(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`null`, false},
		{`"on"`, true},
		{`"off"`, false},
		{`""`, false},
	}

	for _, tc := range cases {
		var flag UrgentFlag
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &flag), "raw=%s", tc.raw)
		require.Equal(t, tc.want, bool(flag), "raw=%s", tc.raw)
	}

	var flag UrgentFlag
	require.Error(t, json.Unmarshal([]byte(`"maybe"`), &flag))
}
