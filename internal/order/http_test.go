package order_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gamertag001/eonova-backend/internal/order"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type orderResp struct {
	Message string      `json:"message"`
	Order   order.Order `json:"order"`
}

func newOrderTS(t *testing.T) (*httptest.Server, *order.Server) {
	t.Helper()

	s := &order.Server{
		Store:   order.NewMemStore(),
		Log:     zap.NewNop(),
		Now:     func() time.Time { return fixedNow },
		Created: order.NewCreatedCounter(prometheus.NewRegistry()),
	}
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts, s
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func createOrder(t *testing.T, ts *httptest.Server, body string) order.Order {
	t.Helper()

	resp, raw := do(t, http.MethodPost, ts.URL+"/", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var out orderResp
	require.NoError(t, json.Unmarshal(raw, &out))
	return out.Order
}

func TestHTTP_CreateOrder(t *testing.T) {
	ts, s := newOrderTS(t)

	// user_id is not checked against any user record.
	o := createOrder(t, ts, `{"id":"","user_id":"guest-42","customizations":[{"id":"c_1","product_id":"basic-tshirt",
		"primary_color":"blue","style":"classic","size":"M","final_price":25}],"total":25,
		"status":"","created_at":"1990-01-01T00:00:00Z","shipping_address":"1 Main St"}`)

	assert.True(t, strings.HasPrefix(o.ID, "o_"), "id=%s", o.ID)
	assert.Empty(t, o.Status)
	assert.Equal(t, fixedNow, o.CreatedAt.UTC())
	require.Len(t, o.Customizations, 1)
	assert.Equal(t, "c_1", o.Customizations[0].ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Created))

	resp, raw := do(t, http.MethodGet, ts.URL+"/"+o.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got order.Order
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, "1 Main St", got.ShippingAddress)
}

func TestHTTP_ListByUser(t *testing.T) {
	ts, _ := newOrderTS(t)

	first := createOrder(t, ts, `{"user_id":"u1","total":10}`)
	createOrder(t, ts, `{"user_id":"u2","total":10}`)
	second := createOrder(t, ts, `{"user_id":"u1","total":15,"status":"paid"}`)

	resp, raw := do(t, http.MethodGet, ts.URL+"/user/u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Orders []order.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Orders, 2)
	assert.Equal(t, first.ID, body.Orders[0].ID)
	assert.Equal(t, second.ID, body.Orders[1].ID)
	assert.Equal(t, "paid", body.Orders[1].Status)

	resp, raw = do(t, http.MethodGet, ts.URL+"/user/nobody", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"orders":[]}`, string(raw))
}

func TestHTTP_UpdateStatus(t *testing.T) {
	ts, _ := newOrderTS(t)
	o := createOrder(t, ts, `{"user_id":"u1","total":10}`)

	resp, raw := do(t, http.MethodPut, ts.URL+"/"+o.ID+"/status?status=shipped", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var out orderResp
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "shipped", out.Order.Status)

	resp, raw = do(t, http.MethodPut, ts.URL+"/"+o.ID+"/status", `{"status":"delivered"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "delivered", out.Order.Status)

	resp, _ = do(t, http.MethodPut, ts.URL+"/"+o.ID+"/status", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPut, ts.URL+"/"+o.ID+"/status", `{"state":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPut, ts.URL+"/o_missing/status?status=shipped", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHTTP_GetMissing(t *testing.T) {
	ts, _ := newOrderTS(t)

	resp, raw := do(t, http.MethodGet, ts.URL+"/o_missing", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "order not found")
}

func TestHTTP_CreateOrder_ClientTimestampsIgnored(t *testing.T) {
	ts, _ := newOrderTS(t)

	for _, createdAt := range []string{`"2024-05-01T10:00:00.123456"`, `""`, `null`, `42`} {
		o := createOrder(t, ts, `{"user_id":"u1","total":10,"created_at":`+createdAt+`}`)
		assert.Equal(t, fixedNow, o.CreatedAt.UTC(), "created_at=%s", createdAt)
	}
}

func TestHTTP_CreateOrder_KeepsCustomizationSnapshots(t *testing.T) {
	ts, _ := newOrderTS(t)

	o := createOrder(t, ts, `{"user_id":"u1","total":20,"customizations":[
		{"id":"c_a","product_id":"basic-tshirt","created_at":"2024-05-01T10:00:00.123456"},
		{"id":"c_b","product_id":"basic-tshirt","created_at":""}]}`)

	require.Len(t, o.Customizations, 2)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC), o.Customizations[0].CreatedAt.UTC())
	assert.True(t, o.Customizations[1].CreatedAt.IsZero())
}

func TestHTTP_CreateOrder_EmptyCustomizations(t *testing.T) {
	ts, _ := newOrderTS(t)

	resp, raw := do(t, http.MethodPost, ts.URL+"/", `{"user_id":"u1","total":0}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	assert.Contains(t, string(raw), `"customizations":[]`)
}

func TestHTTP_CreateOrder_StatusStoredAsGiven(t *testing.T) {
	ts, _ := newOrderTS(t)

	for _, status := range []string{"", " ", "on hold", "pending"} {
		body, err := json.Marshal(map[string]any{"user_id": "u1", "total": 1, "status": status})
		require.NoError(t, err)
		o := createOrder(t, ts, string(body))
		assert.Equal(t, status, o.Status)
	}
}

func TestHTTP_UpdateStatus_AnyString(t *testing.T) {
	ts, _ := newOrderTS(t)
	o := createOrder(t, ts, `{"user_id":"u1","total":10,"status":"pending"}`)

	cases := []struct {
		name string
		url  string
		body string
		want string
	}{
		{name: "blank query", url: "/status?status=%20", want: " "},
		{name: "empty query", url: "/status?status=", want: ""},
		{name: "empty body", url: "/status", body: `{"status":""}`, want: ""},
		{name: "whitespace body", url: "/status", body: `{"status":"  "}`, want: "  "},
		{name: "query wins over body", url: "/status?status=paid", body: `{"status":"ignored"}`, want: "paid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := do(t, http.MethodPut, ts.URL+"/"+o.ID+tc.url, tc.body)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

			var out orderResp
			require.NoError(t, json.Unmarshal(raw, &out))
			assert.Equal(t, tc.want, out.Order.Status)

			resp, raw = do(t, http.MethodGet, ts.URL+"/"+o.ID, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var got order.Order
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, tc.want, got.Status)
		})
	}
}
