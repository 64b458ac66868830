package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"shotdiff/internal/reportv1"
	"shotdiff/internal/rpc"
	"shotdiff/internal/service"
	"shotdiff/internal/store"
)

const reportJSON = `{
  "meta": {
    "id": "cli-1",
    "createdAt": "1700000000000",
    "project": "web",
    "diffBase": {"reportUrl": "https://example.test/r/1"}
  },
  "userAgents": [{"id": "chromium", "deviceType": "DEVICE_TYPE_MOBILE", "devicePixelRatio": 2}],
  "screenshots": {"items": [{"id": "s1", "status": "SCREENSHOT_STATUS_ADDED"}], "total": 1}
}`

func run(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	encoded, err := run(t, []byte(reportJSON), "encode", "ReportData")
	require.NoError(t, err)

	want, err := reportv1.Unmarshal[reportv1.ReportData]([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, "cli-1", want.GetMeta().GetId())
	assert.Equal(t, "https://example.test/r/1", want.GetMeta().GetDiffBase().GetReportUrl())

	decoded, err := run(t, []byte(encoded), "decode", "ReportData")
	require.NoError(t, err)
	var got reportv1.ReportData
	require.NoError(t, got.UnmarshalJSON([]byte(decoded)))
	assert.True(t, reportv1.Equal(want, &got))

	protoNames, err := run(t, []byte(encoded), "decode", "ReportData", "--proto-names")
	require.NoError(t, err)
	assert.Contains(t, protoNames, `"user_agents"`)
}

func TestEncodeFromObjectAndYAML(t *testing.T) {
	object := `{"meta": {"id": "obj", "createdAt": 12, "durationMs": "40"}, "userAgents": [{"deviceType": 2}]}`
	fromObject, err := run(t, []byte(object), "encode", "ReportData", "--object")
	require.NoError(t, err)

	doc := "meta:\n  id: obj\n  createdAt: 12\n  durationMs: 40\nuserAgents:\n  - deviceType: DEVICE_TYPE_MOBILE\n"
	fromYAML, err := run(t, []byte(doc), "encode", "ReportData", "--yaml")
	require.NoError(t, err)
	assert.Equal(t, fromObject, fromYAML)

	r, err := reportv1.Unmarshal[reportv1.ReportData]([]byte(fromObject))
	require.NoError(t, err)
	assert.EqualValues(t, 40, r.GetMeta().GetDurationMs())
	assert.Equal(t, reportv1.DeviceType_DEVICE_TYPE_MOBILE, r.GetUserAgents()[0].GetDeviceType())

	_, err = run(t, []byte(`{"meta": {"createdAt": true}}`), "encode", "ReportData", "--object")
	assert.Error(t, err)
}

func TestEncodeWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pb")
	_, err := run(t, []byte(reportJSON), "encode", "ReportData", "-o", path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := run(t, nil, "decode", "ReportData", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"cli-1"`)
	assert.NotEmpty(t, b)
}

func TestObjectCommand(t *testing.T) {
	out, err := run(t, []byte(reportJSON), "object", "ReportData", "--yaml", "--enums", "string", "--oneofs")
	require.NoError(t, err)
	var obj map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &obj))
	meta := obj["meta"].(map[string]any)
	assert.Equal(t, 1700000000000, meta["createdAt"])
	assert.Equal(t, "reportUrl", meta["diffBase"].(map[string]any)["valueOneof"])
	ua := obj["userAgents"].([]any)[0].(map[string]any)
	assert.Equal(t, "DEVICE_TYPE_MOBILE", ua["deviceType"])

	out, err = run(t, []byte(reportJSON), "object", "ReportData", "--longs", "string")
	require.NoError(t, err)
	assert.Contains(t, out, `"createdAt": "1700000000000"`)

	_, err = run(t, []byte(reportJSON), "object", "ReportData", "--enums", "names")
	assert.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	out, err := run(t, []byte(`{"id": "m", "labels": {"ci": "true"}}`), "verify", "ReportMeta")
	require.NoError(t, err)
	assert.Equal(t, "ReportMeta: valid\n", out)

	_, err = run(t, []byte(`{"testNames": ["a", 2]}`), "verify", "TestFile")
	require.Error(t, err)
	assert.Equal(t, "invalid TestFile: testNames[1]: string expected", err.Error())

	_, err = run(t, []byte("id: 3\n"), "verify", "ReportMeta", "--yaml")
	assert.Error(t, err)

	_, err = run(t, []byte(`{}`), "verify", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown message")
}

func TestSchemaCommand(t *testing.T) {
	out, err := run(t, nil, "schema")
	require.NoError(t, err)
	assert.Equal(t, reportv1.Schema(), out)

	out, err = run(t, nil, "schema", "--messages")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(reportv1.MessageNames(), "\n")+"\n", out)
}

func TestRemoteCommands(t *testing.T) {
	svc := service.New(store.NewMemoryStore(), nil, nil)
	path, handler := rpc.NewReportServiceHandler(rpc.NewReportHandler(svc, nil))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	for _, codec := range [][]string{nil, {"--json-rpc"}} {
		server := append([]string{"--server", srv.URL}, codec...)

		out, err := run(t, []byte(reportJSON), append([]string{"push"}, server...)...)
		require.NoError(t, err)
		var sum reportv1.ReportSummary
		require.NoError(t, sum.UnmarshalJSON([]byte(out)))
		assert.Equal(t, "cli-1", sum.GetId())
		assert.EqualValues(t, 1, sum.GetChangedCount())

		out, err = run(t, nil, append([]string{"get", "cli-1"}, server...)...)
		require.NoError(t, err)
		var got reportv1.ReportData
		require.NoError(t, got.UnmarshalJSON([]byte(out)))
		assert.Equal(t, "web", got.GetMeta().GetProject())

		out, err = run(t, nil, append([]string{"list", "--project", "web"}, server...)...)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[1], "cli-1"))
		assert.Contains(t, lines[1], "2023-11-14T22:13:20Z")

		out, err = run(t, nil, append([]string{"delete", "cli-1"}, server...)...)
		require.NoError(t, err)
		assert.Equal(t, "deleted cli-1\n", out)

		_, err = run(t, nil, append([]string{"delete", "cli-1"}, server...)...)
		assert.Error(t, err)
	}
}
