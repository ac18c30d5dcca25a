package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_Unmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{`"3s"`, 3 * time.Second, true},
		{`"24h"`, 24 * time.Hour, true},
		{`1000000000`, time.Second, true},
		{`"soon"`, 0, false},
		{`true`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_MarshalAsString(t *testing.T) {
	b, err := json.Marshal(struct {
		D Duration `json:"d"`
	}{D: Duration{10 * time.Second}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"10s"}`, string(b))
}
