package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
)

type sampleBody struct {
	Name  string `json:"name" validate:"max=5"`
	State string `json:"state" validate:"omitempty,oneof=a b"`
}

func requestWithParam(key, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func TestParsePathID(t *testing.T) {
	id, err := ParsePathID(requestWithParam("orderId", "42"), "orderId")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-3"} {
		_, err := ParsePathID(requestWithParam("orderId", raw), "orderId")
		require.Error(t, err, raw)
		assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation), raw)
	}
}

func TestDecodeJSONBody(t *testing.T) {
	var body sampleBody
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"abc","state":"a"}`))
	require.NoError(t, DecodeJSONBody(req, &body))
	assert.Equal(t, "abc", body.Name)

	body = sampleBody{}
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, DecodeJSONBody(req, &body))
	assert.Equal(t, sampleBody{}, body)
}

func TestDecodeJSONBodyRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": `{"other":"x"}`,
		"malformed":     `{"name":`,
		"too long":      `{"name":"abcdefg"}`,
		"not in set":    `{"state":"z"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			var body sampleBody
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
			err := DecodeJSONBody(req, &body)
			require.Error(t, err)
			assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
		})
	}
}

func TestDecodeJSONBodyLimitsAndDetails(t *testing.T) {
	var body sampleBody
	big := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	err := DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big)), &body)
	require.Error(t, err)
	assert.Equal(t, "request body too large", pkgerrors.As(err).Message())

	err = DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"vendor":"x"}`)), &body)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"vendor": "is not allowed"}, pkgerrors.As(err).Details())

	err = DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`)), &body)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}
