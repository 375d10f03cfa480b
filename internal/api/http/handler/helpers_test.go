package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/resource-server/internal/api/http/response"
	"github.com/dtroode/resource-server/internal/testutil"
)

func newWriter() *response.Writer {
	return response.NewWriter(false, testutil.MakeNoopLogger())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
