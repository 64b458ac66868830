package reportv1

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protowire"
)

func sampleReport() *ReportData {
	author := &User{Name: "Ada", Email: "ada@example.com", Login: "ada"}
	head := &GitRevision{
		CommitSha:   "9f1c2e7",
		Branch:      "main",
		CommittedAt: 1700000000000,
		Author:      author,
		Subject:     "Tighten header spacing",
	}
	return &ReportData{
		Meta: &ReportMeta{
			Id:        "r-1",
			CreatedAt: 1700000000123,
			DiffBase:  &DiffBase{ValueOneof: &DiffBase_Revision{Revision: head}},
			User:      author,
			GitStatus: &GitStatus{
				Head:           head,
				Dirty:          true,
				ModifiedFiles:  []string{"src/header.css"},
				UntrackedFiles: []string{"tmp/notes.txt"},
				Ahead:          2,
			},
			LibraryVersions: []*LibraryVersion{{Name: "playwright", Version: "1.44.0"}},
			TestFiles: []*TestFile{{
				Path:            "tests/header.spec.ts",
				TestNames:       []string{"renders", "collapses"},
				ScreenshotCount: 2,
			}},
			Project:    "web",
			DurationMs: 5400,
			Labels:     map[string]string{"ci": "true", "shard": "1/4"},
		},
		UserAgents: []*UserAgent{{
			Id:               "chromium-desktop",
			Browser:          "chromium",
			BrowserVersion:   "125.0",
			Os:               "linux",
			DeviceType:       DeviceType_DEVICE_TYPE_DESKTOP,
			Viewport:         &Size{Width: 1280, Height: 720},
			DevicePixelRatio: 2,
			Headless:         true,
		}},
		Screenshots: &Screenshots{
			Items: []*Screenshot{{
				Id:              "s-1",
				Name:            "header",
				TestFile:        "tests/header.spec.ts",
				TestName:        "renders",
				UserAgentId:     "chromium-desktop",
				ImagePath:       "actual/header.png",
				GoldenImagePath: "golden/header.png",
				Status:          ScreenshotStatus_SCREENSHOT_STATUS_CHANGED,
				Diff: &DiffImageResult{
					DiffImagePath: "diff/header.png",
					ChangedPixels: 1200,
					TotalPixels:   921600,
					DiffRatio:     0.0013,
					ActualSize:    &Size{Width: 1280, Height: 720},
					GoldenSize:    &Size{Width: 1280, Height: 720},
					Regions:       []*Rect{{X: -4, Y: 10, Width: 200, Height: 40}},
					ChannelDeltas: []float32{0.5, 0, 0.25},
					Thumbnail:     []byte{0x89, 'P', 'N', 'G'},
					OffsetX:       -3,
					OffsetY:       1,
				},
				Clip:        &Rect{Width: 1280, Height: 80},
				Annotations: map[string]string{"owner": "design"},
			}},
			GoldenSuites: map[string]*GoldenSuite{
				"main": {Name: "main", GoldenDir: "golden", ScreenshotIds: []string{"s-1"}, Revision: head, Checksum: 0xdeadbeef},
			},
			Total: 1,
		},
		Approvals: &Approvals{
			Items: []*Approval{{
				ScreenshotId: "s-1",
				State:        ApprovalState_APPROVAL_STATE_APPROVED,
				Reviewer:     author,
				ReviewedAt:   1700000500000,
				Comment:      "intended",
				ImageHash:    math.MaxUint64 - 7,
			}},
			UpdatedAt: 1700000500000,
			UpdatedBy: author,
		},
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	want := sampleReport()
	b, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Unmarshal[ReportData](b)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if !Equal(want, got) {
		t.Fatalf("Equal() = false after round trip")
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	a, err := sampleReport().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		b, err := sampleReport().Marshal()
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(a) != string(b) {
			t.Fatalf("encoding %d differs from the first", i)
		}
	}
}

func TestMarshalWritesFieldsInAscendingOrder(t *testing.T) {
	b, err := sampleReport().GetMeta().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var last protowire.Number
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			t.Fatalf("bad tag: %v", protowire.ParseError(n))
		}
		if num < last {
			t.Fatalf("field %d written after field %d", num, last)
		}
		last = num
		b = b[n:]
		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			t.Fatalf("bad value for field %d: %v", num, protowire.ParseError(m))
		}
		b = b[m:]
	}
	if last != 10 {
		t.Fatalf("last field = %d, want 10 (labels)", last)
	}
}

func TestMarshalOmitsZeroScalars(t *testing.T) {
	b, err := (&User{}).Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("empty user encoded to %x", b)
	}
	var nilUser *User
	b, err = nilUser.Marshal()
	if err != nil || len(b) != 0 {
		t.Fatalf("nil user encoded to %x, %v", b, err)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	b, err := (&User{Name: "Ada", Login: "ada"}).Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	b = protowire.AppendTag(b, 99, protowire.VarintType)
	b = protowire.AppendVarint(b, 12345)
	b = protowire.AppendTag(b, 100, protowire.BytesType)
	b = protowire.AppendString(b, "ignored")
	b = protowire.AppendTag(b, 101, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)

	got, err := Unmarshal[User](b)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(&User{Name: "Ada", Login: "ada"}, got); diff != "" {
		t.Fatalf("unexpected user (-want +got):\n%s", diff)
	}
	again, err := got.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want, _ := (&User{Name: "Ada", Login: "ada"}).Marshal()
	if string(again) != string(want) {
		t.Fatalf("unknown fields survived re-encoding: %x", again)
	}
}

func TestUnmarshalRejectsTruncatedInput(t *testing.T) {
	b, err := sampleReport().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if _, err := Unmarshal[ReportData](b[:len(b)-3]); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestUnknownEnumNumberIsKept(t *testing.T) {
	in := &UserAgent{Id: "future", DeviceType: DeviceType(42)}
	b, err := in.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Unmarshal[UserAgent](b)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.DeviceType != 42 {
		t.Fatalf("DeviceType = %d, want 42", got.DeviceType)
	}
	if got.DeviceType.Known() {
		t.Fatalf("Known() = true for undeclared value")
	}
	if got.DeviceType.String() != "42" {
		t.Fatalf("String() = %q, want 42", got.DeviceType.String())
	}
}

func TestOneofMemberWithZeroValueIsWritten(t *testing.T) {
	in := &DiffBase{ValueOneof: &DiffBase_GoldenDir{}}
	b, err := in.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("oneof member with empty value was dropped")
	}
	got, err := Unmarshal[DiffBase](b)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := got.ValueOneof.(*DiffBase_GoldenDir); !ok {
		t.Fatalf("ValueOneof = %T, want *DiffBase_GoldenDir", got.ValueOneof)
	}
}

func TestOneofLastMemberOnWireWins(t *testing.T) {
	a, _ := (&DiffBase{ValueOneof: &DiffBase_Revision{Revision: &GitRevision{Branch: "main"}}}).Marshal()
	b, _ := (&DiffBase{ValueOneof: &DiffBase_ReportUrl{ReportUrl: "https://ci.example.com/r/1"}}).Marshal()

	got, err := Unmarshal[DiffBase](append(a, b...))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.GetRevision() != nil {
		t.Fatalf("revision should have been cleared")
	}
	if got.GetReportUrl() != "https://ci.example.com/r/1" {
		t.Fatalf("ReportUrl = %q", got.GetReportUrl())
	}
}

func TestJSONMatchesObjectView(t *testing.T) {
	r := sampleReport()
	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var viaJSON map[string]any
	if err := json.Unmarshal(raw, &viaJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	meta := viaJSON["meta"].(map[string]any)
	if meta["createdAt"] != "1700000000123" {
		t.Fatalf("createdAt = %#v, want decimal string", meta["createdAt"])
	}
	ua := viaJSON["userAgents"].([]any)[0].(map[string]any)
	if ua["deviceType"] != "DEVICE_TYPE_DESKTOP" {
		t.Fatalf("deviceType = %#v", ua["deviceType"])
	}
	diff := viaJSON["screenshots"].(map[string]any)["items"].([]any)[0].(map[string]any)["diff"].(map[string]any)
	if diff["thumbnail"] != "iVBORw==" {
		t.Fatalf("thumbnail = %#v", diff["thumbnail"])
	}

	var back ReportData
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(r, &back); diff != "" {
		t.Fatalf("json round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalJSONIgnoresUnknownKeys(t *testing.T) {
	var u User
	if err := u.UnmarshalJSON([]byte(`{"name":"Ada","shoeSize":42}`)); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if u.Name != "Ada" {
		t.Fatalf("Name = %q", u.Name)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleReport()
	c := Clone(orig)
	c.Meta.Project = "other"
	c.Meta.Labels["ci"] = "false"
	c.Screenshots.Items[0].Diff.Thumbnail[0] = 0
	c.UserAgents[0].Viewport.Width = 1

	if orig.Meta.Project != "web" || orig.Meta.Labels["ci"] != "true" {
		t.Fatalf("clone shares meta with original")
	}
	if orig.Screenshots.Items[0].Diff.Thumbnail[0] != 0x89 {
		t.Fatalf("clone shares bytes with original")
	}
	if orig.UserAgents[0].Viewport.Width != 1280 {
		t.Fatalf("clone shares nested messages with original")
	}
	if Clone[ReportData](nil) != nil {
		t.Fatalf("Clone(nil) should be nil")
	}
}

func TestEqual(t *testing.T) {
	var a, b *User
	if !Equal(a, b) {
		t.Fatalf("two nil users should be equal")
	}
	if Equal(a, &User{}) {
		t.Fatalf("nil and empty should differ")
	}
	if !Equal(&User{Name: "x"}, &User{Name: "x"}) {
		t.Fatalf("equal users reported different")
	}
	if Equal(&User{Name: "x"}, &LibraryVersion{Name: "x"}) {
		t.Fatalf("different message types reported equal")
	}
}

func TestNegativeZeroSurvives(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	in := &UserAgent{DevicePixelRatio: negZero}
	b, err := in.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Unmarshal[UserAgent](b)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !math.Signbit(float64(got.DevicePixelRatio)) {
		t.Fatalf("DevicePixelRatio lost its sign")
	}
}
