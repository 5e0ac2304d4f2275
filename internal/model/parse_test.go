package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestParse_FullRecord(t *testing.T) {
	raw := decode(t, `{
		"code": 0,
		"total": 2,
		"msg": "ok",
		"data": [
			{
				"code": "2025050", "date": "2025-05-06", "week": "二",
				"red": "01 02 03 04 05 06", "blue": "07",
				"content": "北京1注",
				"prize_grades": [{"type": "1", "num": "1", "money": "5000000"}, {"type": "2", "num": null}],
				"sales": "350000000", "poolmoney": "1800000000",
				"video_link": "/v/1", "details_link": "/d/1",
				"creat_time": "2025-05-06 22:00:00", "disabled": 0,
				"extra": "ignored"
			},
			{"code": "2025049", "date": "2025-05-04", "red": "07 08 09 10 11 12", "blue": "13"}
		]
	}`)

	env, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, env.Code)
	require.NotNil(t, env.Total)
	assert.Equal(t, 2, *env.Total)
	require.Len(t, env.Data, 2)

	latest, ok := env.Latest()
	require.True(t, ok)
	assert.Equal(t, "2025050", latest.Code)
	require.NotNil(t, latest.Week)
	assert.Equal(t, "二", *latest.Week)
	require.Len(t, latest.PrizeGrades, 2)
	assert.Nil(t, latest.PrizeGrades[1].Num)
	assert.Nil(t, latest.UpdateTime)

	older := env.Data[1]
	assert.NotNil(t, older.PrizeGrades)
	assert.Empty(t, older.PrizeGrades)
	assert.Equal(t, 0, older.Disabled)
	assert.Nil(t, older.Sales)
}

func TestParse_LatestIsFirstRegardlessOfLength(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		data := make([]any, 0, n)
		for i := 0; i < n; i++ {
			data = append(data, map[string]any{
				"code": fmt.Sprintf("%02d", i),
				"date": "2025-01-01",
				"red":  "01 02 03 04 05 06",
				"blue": "07",
			})
		}
		env, err := Parse(map[string]any{"code": float64(0), "data": data})
		require.NoError(t, err)
		latest, ok := env.Latest()
		require.True(t, ok)
		assert.Equal(t, "00", latest.Code)
	}
}

func TestParse_EmptyAndAbsentData(t *testing.T) {
	for _, s := range []string{`{"code": 0}`, `{"code": 0, "data": null}`, `{"code": 0, "data": []}`} {
		env, err := Parse(decode(t, s))
		require.NoError(t, err, s)
		_, ok := env.Latest()
		assert.False(t, ok, s)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing envelope code": `{"data": []}`,
		"string envelope code":  `{"code": "0", "data": []}`,
		"missing record code":   `{"code": 0, "data": [{"date": "d", "red": "01", "blue": "02"}]}`,
		"numeric blue":          `{"code": 0, "data": [{"code": "1", "date": "d", "red": "01", "blue": 2}]}`,
		"null red":              `{"code": 0, "data": [{"code": "1", "date": "d", "red": null, "blue": "02"}]}`,
		"null prize grades":     `{"code": 0, "data": [{"code": "1", "date": "d", "red": "01", "blue": "02", "prize_grades": null}]}`,
		"fractional total":      `{"code": 0, "total": 1.5}`,
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(decode(t, s))
			require.Error(t, err)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestLatest_NilEnvelope(t *testing.T) {
	var env *ResponseEnvelope
	_, ok := env.Latest()
	assert.False(t, ok)
}
