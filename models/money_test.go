package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyJSON(t *testing.T) {
	var body struct {
		Price Money `json:"price"`
		Hours Hours `json:"hours"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": 50, "hours": "2"}`), &body))
	assert.Equal(t, "50.00", body.Price.String())
	assert.Equal(t, "2.0", body.Hours.String())

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": "50.00", "hours": "2.0"}`, string(out))
}

func TestMoneyTimesHours(t *testing.T) {
	cases := []struct {
		price, hours, want string
	}{
		{"50.00", "2", "100.00"},
		{"33.33", "1.5", "50.00"},
		{"19.99", "0.5", "10.00"},
		{"120", "7.5", "900.00"},
	}

	for _, tc := range cases {
		got := MustMoney(tc.price).Times(MustHours(tc.hours))
		assert.Equal(t, tc.want, got.String(), "%s x %s", tc.price, tc.hours)
	}
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan(float64(100)))
	assert.Equal(t, "100.00", m.String())

	require.NoError(t, m.Scan([]byte("12.5")))
	assert.Equal(t, "12.50", m.String())

	v, err := MustMoney("7.1").Value()
	require.NoError(t, err)
	assert.Equal(t, "7.10", v)
}

func TestHoursInRange(t *testing.T) {
	assert.True(t, MustHours("0.1").InRange())
	assert.True(t, MustHours("999.9").InRange())
	assert.False(t, MustHours("0").InRange())
	assert.False(t, MustHours("-1").InRange())
	assert.False(t, MustHours("1000").InRange())
}
