package reportv1

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"shotdiff/internal/protoobject"
)

func TestVerifyAcceptsObjectView(t *testing.T) {
	obj := sampleReport().ToObject(protoobject.JSONOptions)
	if err := Verify[ReportData](obj); err != nil {
		t.Fatalf("Verify(JSON view) error = %v", err)
	}
	obj = sampleReport().ToObject(protoobject.Options{})
	if err := Verify[ReportData](obj); err != nil {
		t.Fatalf("Verify(native view) error = %v", err)
	}
}

func TestVerifyReportsFirstProblem(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		obj  any
		want string
	}{
		{"not an object", "User", "ada", "object expected"},
		{"string field", "User", map[string]any{"name": 7}, "name: string expected"},
		{"bool field", "UserAgent", map[string]any{"headless": "yes"}, "headless: boolean expected"},
		{"enum name", "UserAgent", map[string]any{"deviceType": "DEVICE_TYPE_WATCH"}, "deviceType: enum value expected"},
		{"enum number", "Screenshot", map[string]any{"status": 99}, "status: enum value expected"},
		{"int32 range", "Rect", map[string]any{"x": 1 << 40}, "x: integer expected"},
		{"uint32 negative", "Size", map[string]any{"width": -1}, "width: integer expected"},
		{"int64 fraction", "ReportMeta", map[string]any{"createdAt": 1.5}, "createdAt: integer|Long expected"},
		{"int64 junk string", "ReportMeta", map[string]any{"createdAt": "soon"}, "createdAt: integer|Long expected"},
		{"float", "UserAgent", map[string]any{"devicePixelRatio": "two"}, "devicePixelRatio: number expected"},
		{"bytes", "DiffImageResult", map[string]any{"thumbnail": 3}, "thumbnail: buffer expected"},
		{"array", "TestFile", map[string]any{"testNames": "renders"}, "testNames: array expected"},
		{"array element", "TestFile", map[string]any{"testNames": []any{"a", 2}}, "testNames[1]: string expected"},
		{"map", "ReportMeta", map[string]any{"labels": []any{"a"}}, "labels: object expected"},
		{"map value", "ReportMeta", map[string]any{"labels": map[string]any{"ci": true}}, "labels[ci]: string expected"},
		{"nested", "ReportData", map[string]any{"meta": map[string]any{"user": map[string]any{"email": false}}}, "meta.user.email: string expected"},
		{
			"oneof",
			"ReportData",
			map[string]any{"meta": map[string]any{"diffBase": map[string]any{"goldenDir": "g", "reportUrl": "u"}}},
			"meta.diffBase.valueOneof: multiple values",
		},
		{"declaration order", "User", map[string]any{"login": 1, "name": 2}, "name: string expected"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := VerifyNamed(tc.msg, tc.obj)
			if err == nil {
				t.Fatalf("VerifyNamed(%s) = nil, want %q", tc.msg, tc.want)
			}
			if err.Error() != tc.want {
				t.Fatalf("VerifyNamed(%s) = %q, want %q", tc.msg, err.Error(), tc.want)
			}
			var verr *protoobject.VerifyError
			if !errors.As(err, &verr) {
				t.Fatalf("error %T is not a *VerifyError", err)
			}
		})
	}
}

func TestVerifyIgnoresUnknownAndNullFields(t *testing.T) {
	obj := map[string]any{
		"name":      nil,
		"nickname":  42,
		"login":     "ada",
		"user_name": []any{},
	}
	if err := Verify[User](obj); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if err := VerifyNamed("NoSuchMessage", obj); err == nil {
		t.Fatalf("expected error for unknown message name")
	}
}

func TestFromObjectAcceptsLooseForms(t *testing.T) {
	got, err := FromObject[ReportMeta](map[string]any{
		"id":              "r-9",
		"created_at":      "1700000000000",
		"durationMs":      float64(1500),
		"labels":          map[string]string{"ci": "true"},
		"diffBase":        map[string]any{"goldenDir": "golden"},
		"testFiles":       []map[string]any{{"path": "a.spec.ts", "screenshotCount": 3}},
		"unknownKey":      "ignored",
		"gitStatus":       map[string]any{"dirty": true, "modified_files": []string{"x.css"}},
		"libraryVersions": nil,
	})
	if err != nil {
		t.Fatalf("FromObject() error = %v", err)
	}
	want := &ReportMeta{
		Id:         "r-9",
		CreatedAt:  1700000000000,
		DurationMs: 1500,
		Labels:     map[string]string{"ci": "true"},
		DiffBase:   &DiffBase{ValueOneof: &DiffBase_GoldenDir{GoldenDir: "golden"}},
		TestFiles:  []*TestFile{{Path: "a.spec.ts", ScreenshotCount: 3}},
		GitStatus:  &GitStatus{Dirty: true, ModifiedFiles: []string{"x.css"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FromObject mismatch (-want +got):\n%s", diff)
	}
}

func TestFromObjectEnumsAndBytes(t *testing.T) {
	ua, err := FromObject[UserAgent](map[string]any{"deviceType": "DEVICE_TYPE_MOBILE"})
	if err != nil {
		t.Fatalf("FromObject() error = %v", err)
	}
	if ua.DeviceType != DeviceType_DEVICE_TYPE_MOBILE {
		t.Fatalf("DeviceType = %v", ua.DeviceType)
	}
	ua, err = FromObject[UserAgent](map[string]any{"deviceType": 7})
	if err != nil {
		t.Fatalf("FromObject() error = %v", err)
	}
	if ua.DeviceType != 7 {
		t.Fatalf("unknown enum number not kept: %v", ua.DeviceType)
	}

	d, err := FromObject[DiffImageResult](map[string]any{
		"thumbnail":     "iVBORw==",
		"changedPixels": "18446744073709551615",
		"diffRatio":     "NaN",
	})
	if err != nil {
		t.Fatalf("FromObject() error = %v", err)
	}
	if string(d.Thumbnail) != "\x89PNG" {
		t.Fatalf("Thumbnail = %x", d.Thumbnail)
	}
	if d.ChangedPixels != 1<<64-1 {
		t.Fatalf("ChangedPixels = %d", d.ChangedPixels)
	}
	if !math.IsNaN(d.DiffRatio) {
		t.Fatalf("DiffRatio = %v, want NaN", d.DiffRatio)
	}
}

func TestFromObjectTypeErrors(t *testing.T) {
	cases := []struct {
		obj  map[string]any
		want string
	}{
		{map[string]any{"meta": "r-1"}, "meta: object expected"},
		{map[string]any{"userAgents": map[string]any{}}, "userAgents: array expected"},
		{map[string]any{"userAgents": []any{nil}}, "userAgents[0]: object expected"},
		{map[string]any{"screenshots": map[string]any{"goldenSuites": map[string]any{"main": 1}}}, "screenshots.goldenSuites[main]: object expected"},
		{map[string]any{"meta": map[string]any{"testFiles": "a.spec.ts"}}, "meta.testFiles: array expected"},
	}
	for _, tc := range cases {
		_, err := FromObject[ReportData](tc.obj)
		if err == nil {
			t.Fatalf("FromObject(%v) = nil error, want %q", tc.obj, tc.want)
		}
		if !errors.Is(err, protoobject.ErrType) {
			t.Fatalf("error %v does not wrap ErrType", err)
		}
		if err.Error() != tc.want {
			t.Fatalf("error = %q, want %q", err.Error(), tc.want)
		}
	}
}

func TestFromObjectCoercesScalars(t *testing.T) {
	ua, err := FromObject[UserAgent](map[string]any{
		"id":               5,
		"browser":          true,
		"headless":         1,
		"deviceType":       "DEVICE_TYPE_WATCH",
		"devicePixelRatio": "1.5",
		"viewport":         map[string]any{"width": "1280", "height": 720.9},
	})
	if err != nil {
		t.Fatalf("FromObject() error = %v", err)
	}
	want := &UserAgent{
		Id:               "5",
		Browser:          "true",
		Headless:         true,
		DevicePixelRatio: 1.5,
		Viewport:         &Size{Width: 1280, Height: 720},
	}
	if diff := cmp.Diff(want, ua); diff != "" {
		t.Fatalf("coerced UserAgent mismatch (-want +got):\n%s", diff)
	}

	ua, err = FromObject[UserAgent](map[string]any{"headless": "", "deviceType": false})
	if err != nil {
		t.Fatalf("FromObject() error = %v", err)
	}
	if ua.Headless || ua.DeviceType != DeviceType_DEVICE_TYPE_UNSPECIFIED {
		t.Fatalf("falsy inputs = %+v", ua)
	}

	d, err := FromObject[DiffImageResult](map[string]any{
		"changedPixels": -1,
		"totalPixels":   "lots",
		"thumbnail":     "not base64!",
		"offsetX":       float64(1 << 32),
	})
	if err != nil {
		t.Fatalf("FromObject() error = %v", err)
	}
	if d.ChangedPixels != 1<<64-1 || d.TotalPixels != 0 || d.Thumbnail != nil || d.OffsetX != 0 {
		t.Fatalf("coerced DiffImageResult = %+v", d)
	}
}

func TestFromObjectOneofLastDeclaredWins(t *testing.T) {
	d, err := FromObject[DiffBase](map[string]any{"goldenDir": "g", "reportUrl": "u"})
	if err != nil {
		t.Fatalf("FromObject() error = %v", err)
	}
	if d.GetReportUrl() != "u" || d.GetGoldenDir() != "" {
		t.Fatalf("ValueOneof = %#v", d.ValueOneof)
	}
}

func TestObjectRoundTrip(t *testing.T) {
	want := sampleReport()
	for _, o := range []protoobject.Options{
		{},
		protoobject.JSONOptions,
		{Enums: protoobject.EnumsAsStrings, Defaults: true, Oneofs: true, UseProtoNames: true},
	} {
		obj := want.ToObject(o)
		got, err := FromObject[ReportData](obj)
		if err != nil {
			t.Fatalf("FromObject(%+v) error = %v", o, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("object round trip with %+v (-want +got):\n%s", o, diff)
		}
	}
}

func TestToObjectDefaults(t *testing.T) {
	got := (&UserAgent{}).ToObject(protoobject.Options{Enums: protoobject.EnumsAsStrings, Defaults: true})
	want := map[string]any{
		"id":               "",
		"browser":          "",
		"browserVersion":   "",
		"os":               "",
		"deviceType":       "DEVICE_TYPE_UNSPECIFIED",
		"devicePixelRatio": float32(0),
		"headless":         false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	got = (&GitStatus{}).ToObject(protoobject.Options{Arrays: true})
	want = map[string]any{"modifiedFiles": []any{}, "untrackedFiles": []any{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("arrays mismatch (-want +got):\n%s", diff)
	}

	got = (&Screenshot{}).ToObject(protoobject.Options{Objects: true})
	want = map[string]any{"annotations": map[string]any{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("objects mismatch (-want +got):\n%s", diff)
	}
}

func TestToObjectScalarForms(t *testing.T) {
	a := &Approval{State: ApprovalState_APPROVAL_STATE_REJECTED, ReviewedAt: 42, ImageHash: 7}

	native := a.ToObject(protoobject.Options{})
	if native["state"] != int32(2) || native["reviewedAt"] != int64(42) || native["imageHash"] != uint64(7) {
		t.Fatalf("native view = %#v", native)
	}
	js := a.ToObject(protoobject.JSONOptions)
	if js["state"] != "APPROVAL_STATE_REJECTED" || js["reviewedAt"] != "42" || js["imageHash"] != "7" {
		t.Fatalf("json view = %#v", js)
	}
	byProto := a.ToObject(protoobject.Options{UseProtoNames: true})
	if _, ok := byProto["reviewed_at"]; !ok {
		t.Fatalf("proto names not used: %#v", byProto)
	}
}

func TestToObjectOneofs(t *testing.T) {
	d := &DiffBase{ValueOneof: &DiffBase_ReportUrl{ReportUrl: "https://ci.example.com/r/1"}}
	got := d.ToObject(protoobject.Options{Oneofs: true})
	want := map[string]any{"reportUrl": "https://ci.example.com/r/1", "valueOneof": "reportUrl"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("oneof view mismatch (-want +got):\n%s", diff)
	}
	empty := (&DiffBase{}).ToObject(protoobject.Options{Oneofs: true, Defaults: true})
	if len(empty) != 0 {
		t.Fatalf("unset oneof produced %#v", empty)
	}
}
