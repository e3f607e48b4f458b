package cookie_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/cookie"
)

func TestValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value cookie.Value
		want  string
	}{
		{"null", cookie.Null{}, `null`},
		{"bool", cookie.Bool(false), `false`},
		{"integer", cookie.Number(42), `42`},
		{"NaN", cookie.Number(math.NaN()), `null`},
		{"infinity", cookie.Number(math.Inf(-1)), `null`},
		{"string", cookie.String(`say "hi" <b>`), `"say \"hi\" <b>"`},
		{"nil array", cookie.Array(nil), `[]`},
		{"nil object", cookie.Object(nil), `{}`},
		{"nil element", cookie.Array{nil, cookie.Number(1)}, `[null,1]`},
		{"sorted keys", cookie.Object{"z": cookie.Number(1), "a": cookie.Number(2), "m": cookie.Array{}}, `{"a":2,"m":[],"z":1}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.value.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestCodec_RoundTrip_Lossy(t *testing.T) {
	t.Parallel()
	codec := cookie.NewCodec(nil, nil)

	tests := []struct {
		name  string
		value cookie.Value
		want  cookie.Value
	}{
		{"nil array element", cookie.Array{nil, cookie.Bool(true)}, cookie.Array{cookie.Null{}, cookie.Bool(true)}},
		{"nil object member", cookie.Object{"a": nil}, cookie.Object{"a": cookie.Null{}}},
		{"invalid utf-8", cookie.String("a\xffb"), cookie.String("a\ufffdb")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := codec.Decode(codec.Encode(tt.value))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	t.Parallel()

	v, err := cookie.ParseValue([]byte(`{"a":[1,true,null,"x"],"b":{}}`))
	require.NoError(t, err)
	assert.Equal(t, cookie.Object{
		"a": cookie.Array{cookie.Number(1), cookie.Bool(true), cookie.Null{}, cookie.String("x")},
		"b": cookie.Object{},
	}, v)

	for _, bad := range []string{``, `aaaa`, `{"a":`, `1 2`, `undefined`} {
		_, err := cookie.ParseValue([]byte(bad))
		assert.ErrorIs(t, err, cookie.ErrInvalidJSON, "input %q", bad)
	}
}

func TestValueOf(t *testing.T) {
	t.Parallel()

	type prefs struct {
		Theme string   `json:"theme"`
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}

	v, err := cookie.ValueOf(prefs{Theme: "dark", Count: 3, Tags: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, cookie.Object{
		"theme": cookie.String("dark"),
		"count": cookie.Number(3),
		"tags":  cookie.Array{cookie.String("a")},
	}, v)

	var back prefs
	require.NoError(t, cookie.Unmarshal(v, &back))
	assert.Equal(t, prefs{Theme: "dark", Count: 3, Tags: []string{"a"}}, back)

	nilValue, err := cookie.ValueOf(nil)
	require.NoError(t, err)
	assert.Nil(t, nilValue)

	same, err := cookie.ValueOf(cookie.String("x"))
	require.NoError(t, err)
	assert.Equal(t, cookie.String("x"), same)

	_, err = cookie.ValueOf(make(chan int))
	require.ErrorIs(t, err, cookie.ErrInvalidValue)

	var n int
	require.ErrorIs(t, cookie.Unmarshal(cookie.String("x"), &n), cookie.ErrInvalidValue)
}
