package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedgerTime_UnmarshalLayouts(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2024-03-01T10:00:00Z"`, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"no offset", `"2024-03-01T10:00:00"`, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"space separated", `"2024-03-01 10:00:00"`, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"date only", `"2024-03-01"`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var lt LedgerTime
			err := json.Unmarshal([]byte(tc.input), &lt)
			assert.NoError(t, err)
			assert.True(t, tc.want.Equal(lt.Time))
		})
	}
}

func TestLedgerTime_UnmarshalNull(t *testing.T) {
	var lt LedgerTime
	err := json.Unmarshal([]byte(`null`), &lt)
	assert.NoError(t, err)
	assert.True(t, lt.Time.IsZero())
}

func TestLedgerTime_UnmarshalInvalid(t *testing.T) {
	var lt LedgerTime
	err := json.Unmarshal([]byte(`"01/03/2024"`), &lt)
	assert.Error(t, err)
}

func TestLedgerTime_MarshalRoundTrip(t *testing.T) {
	lt := NewLedgerTime(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	data, err := json.Marshal(lt)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:00:00Z"`, string(data))
}

func TestLedgerTime_MarshalZeroIsNull(t *testing.T) {
	var lt LedgerTime
	data, err := json.Marshal(lt)
	assert.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestLedgerTime_ScanVariants(t *testing.T) {
	want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	var fromTime LedgerTime
	assert.NoError(t, fromTime.Scan(want))
	assert.True(t, want.Equal(fromTime.Time))

	var fromString LedgerTime
	assert.NoError(t, fromString.Scan("2024-03-01 10:00:00"))
	assert.True(t, want.Equal(fromString.Time))

	var fromNil LedgerTime
	assert.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.Time.IsZero())

	var fromInt LedgerTime
	assert.Error(t, fromInt.Scan(42))
}

func TestLedgerTime_ValueZeroIsNil(t *testing.T) {
	var lt LedgerTime
	v, err := lt.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
}
