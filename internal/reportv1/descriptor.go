package reportv1

import (
	_ "embed"
	"fmt"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

//go:embed report.proto
var schemaSource string

// PackageName is the protobuf package of every message in this file.
const PackageName protoreflect.FullName = "shotdiff.report.v1"

var (
	file = mustBuildFile()

	reportDataDesc      = file.Messages().ByName("ReportData")
	reportMetaDesc      = file.Messages().ByName("ReportMeta")
	diffBaseDesc        = file.Messages().ByName("DiffBase")
	gitRevisionDesc     = file.Messages().ByName("GitRevision")
	userDesc            = file.Messages().ByName("User")
	gitStatusDesc       = file.Messages().ByName("GitStatus")
	libraryVersionDesc  = file.Messages().ByName("LibraryVersion")
	testFileDesc        = file.Messages().ByName("TestFile")
	userAgentDesc       = file.Messages().ByName("UserAgent")
	screenshotsDesc     = file.Messages().ByName("Screenshots")
	screenshotDesc      = file.Messages().ByName("Screenshot")
	diffImageResultDesc = file.Messages().ByName("DiffImageResult")
	sizeDesc            = file.Messages().ByName("Size")
	rectDesc            = file.Messages().ByName("Rect")
	approvalsDesc       = file.Messages().ByName("Approvals")
	approvalDesc        = file.Messages().ByName("Approval")
	goldenSuiteDesc     = file.Messages().ByName("GoldenSuite")

	reportSummaryDesc        = file.Messages().ByName("ReportSummary")
	putReportRequestDesc     = file.Messages().ByName("PutReportRequest")
	putReportResponseDesc    = file.Messages().ByName("PutReportResponse")
	getReportRequestDesc     = file.Messages().ByName("GetReportRequest")
	getReportResponseDesc    = file.Messages().ByName("GetReportResponse")
	listReportsRequestDesc   = file.Messages().ByName("ListReportsRequest")
	listReportsResponseDesc  = file.Messages().ByName("ListReportsResponse")
	deleteReportRequestDesc  = file.Messages().ByName("DeleteReportRequest")
	deleteReportResponseDesc = file.Messages().ByName("DeleteReportResponse")
)

// File returns the descriptor of report.proto.
func File() protoreflect.FileDescriptor { return file }

// Schema returns the report.proto source the descriptor mirrors.
func Schema() string { return schemaSource }

// MessageDescriptor looks a message up by short ("ReportData") or full
// ("shotdiff.report.v1.ReportData") name.
func MessageDescriptor(name string) (protoreflect.MessageDescriptor, bool) {
	name = strings.TrimPrefix(strings.TrimSpace(name), string(PackageName)+".")
	if name == "" || strings.Contains(name, ".") {
		return nil, false
	}
	md := file.Messages().ByName(protoreflect.Name(name))
	return md, md != nil
}

// MessageNames lists the top-level message names in declaration order.
func MessageNames() []string {
	msgs := file.Messages()
	out := make([]string, 0, msgs.Len())
	for i := 0; i < msgs.Len(); i++ {
		out = append(out, string(msgs.Get(i).Name()))
	}
	return out
}

func mustBuildFile() protoreflect.FileDescriptor {
	fd, err := protodesc.NewFile(fileProto(), new(protoregistry.Files))
	if err != nil {
		panic(fmt.Sprintf("reportv1: build descriptor: %v", err))
	}
	return fd
}

type fieldType = descriptorpb.FieldDescriptorProto_Type

const (
	typeString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
	typeBool    = descriptorpb.FieldDescriptorProto_TYPE_BOOL
	typeInt32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
	typeSint32  = descriptorpb.FieldDescriptorProto_TYPE_SINT32
	typeUint32  = descriptorpb.FieldDescriptorProto_TYPE_UINT32
	typeInt64   = descriptorpb.FieldDescriptorProto_TYPE_INT64
	typeUint64  = descriptorpb.FieldDescriptorProto_TYPE_UINT64
	typeFixed32 = descriptorpb.FieldDescriptorProto_TYPE_FIXED32
	typeFixed64 = descriptorpb.FieldDescriptorProto_TYPE_FIXED64
	typeFloat   = descriptorpb.FieldDescriptorProto_TYPE_FLOAT
	typeDouble  = descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
	typeBytes   = descriptorpb.FieldDescriptorProto_TYPE_BYTES
)

func fileProto() *descriptorpb.FileDescriptorProto {
	reportMeta := message("ReportMeta",
		scalar("id", 1, typeString),
		scalar("created_at", 2, typeInt64),
		messageField("diff_base", 3, "DiffBase"),
		messageField("user", 4, "User"),
		messageField("git_status", 5, "GitStatus"),
		repeated(messageField("library_versions", 6, "LibraryVersion")),
		repeated(messageField("test_files", 7, "TestFile")),
		scalar("project", 8, typeString),
		scalar("duration_ms", 9, typeUint32),
	)
	reportMeta.Field = append(reportMeta.Field, mapField(reportMeta, "labels", 10, scalar("value", 2, typeString)))

	diffBase := message("DiffBase",
		inOneof(messageField("revision", 1, "GitRevision"), 0),
		inOneof(scalar("golden_dir", 2, typeString), 0),
		inOneof(scalar("report_url", 3, typeString), 0),
	)
	diffBase.OneofDecl = []*descriptorpb.OneofDescriptorProto{{Name: proto.String("value_oneof")}}

	screenshots := message("Screenshots")
	screenshots.Field = []*descriptorpb.FieldDescriptorProto{
		repeated(messageField("items", 1, "Screenshot")),
		mapField(screenshots, "golden_suites", 2, messageField("value", 2, "GoldenSuite")),
		scalar("total", 3, typeUint32),
	}

	screenshot := message("Screenshot")
	screenshot.Field = []*descriptorpb.FieldDescriptorProto{
		scalar("id", 1, typeString),
		scalar("name", 2, typeString),
		scalar("test_file", 3, typeString),
		scalar("test_name", 4, typeString),
		scalar("user_agent_id", 5, typeString),
		scalar("image_path", 6, typeString),
		scalar("golden_image_path", 7, typeString),
		enumField("status", 8, "ScreenshotStatus"),
		messageField("diff", 9, "DiffImageResult"),
		messageField("clip", 10, "Rect"),
		mapField(screenshot, "annotations", 11, scalar("value", 2, typeString)),
		scalar("error", 12, typeString),
	}

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("shotdiff/report/v1/report.proto"),
		Package: proto.String(string(PackageName)),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{GoPackage: proto.String("shotdiff/internal/reportv1;reportv1")},
		EnumType: []*descriptorpb.EnumDescriptorProto{
			enum("DeviceType", "DEVICE_TYPE_UNSPECIFIED", "DEVICE_TYPE_DESKTOP", "DEVICE_TYPE_MOBILE", "DEVICE_TYPE_TABLET"),
			enum("ScreenshotStatus",
				"SCREENSHOT_STATUS_UNSPECIFIED",
				"SCREENSHOT_STATUS_UNCHANGED",
				"SCREENSHOT_STATUS_CHANGED",
				"SCREENSHOT_STATUS_ADDED",
				"SCREENSHOT_STATUS_REMOVED",
				"SCREENSHOT_STATUS_FAILED",
			),
			enum("ApprovalState", "APPROVAL_STATE_UNSPECIFIED", "APPROVAL_STATE_APPROVED", "APPROVAL_STATE_REJECTED"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			message("ReportData",
				messageField("meta", 1, "ReportMeta"),
				repeated(messageField("user_agents", 2, "UserAgent")),
				messageField("screenshots", 3, "Screenshots"),
				messageField("approvals", 4, "Approvals"),
			),
			reportMeta,
			diffBase,
			message("GitRevision",
				scalar("commit_sha", 1, typeString),
				scalar("branch", 2, typeString),
				scalar("tag", 3, typeString),
				scalar("committed_at", 4, typeInt64),
				messageField("author", 5, "User"),
				scalar("subject", 6, typeString),
			),
			message("User",
				scalar("name", 1, typeString),
				scalar("email", 2, typeString),
				scalar("login", 3, typeString),
			),
			message("GitStatus",
				messageField("head", 1, "GitRevision"),
				scalar("dirty", 2, typeBool),
				repeated(scalar("modified_files", 3, typeString)),
				repeated(scalar("untracked_files", 4, typeString)),
				scalar("ahead", 5, typeUint32),
				scalar("behind", 6, typeUint32),
			),
			message("LibraryVersion",
				scalar("name", 1, typeString),
				scalar("version", 2, typeString),
			),
			message("TestFile",
				scalar("path", 1, typeString),
				repeated(scalar("test_names", 2, typeString)),
				scalar("screenshot_count", 3, typeUint32),
			),
			message("UserAgent",
				scalar("id", 1, typeString),
				scalar("browser", 2, typeString),
				scalar("browser_version", 3, typeString),
				scalar("os", 4, typeString),
				enumField("device_type", 5, "DeviceType"),
				messageField("viewport", 6, "Size"),
				scalar("device_pixel_ratio", 7, typeFloat),
				scalar("headless", 8, typeBool),
			),
			screenshots,
			screenshot,
			message("DiffImageResult",
				scalar("diff_image_path", 1, typeString),
				scalar("changed_pixels", 2, typeUint64),
				scalar("total_pixels", 3, typeUint64),
				scalar("diff_ratio", 4, typeDouble),
				messageField("actual_size", 5, "Size"),
				messageField("golden_size", 6, "Size"),
				repeated(messageField("regions", 7, "Rect")),
				repeated(scalar("channel_deltas", 8, typeFloat)),
				scalar("thumbnail", 9, typeBytes),
				scalar("size_mismatch", 10, typeBool),
				scalar("offset_x", 11, typeSint32),
				scalar("offset_y", 12, typeSint32),
			),
			message("Size",
				scalar("width", 1, typeUint32),
				scalar("height", 2, typeUint32),
			),
			message("Rect",
				scalar("x", 1, typeInt32),
				scalar("y", 2, typeInt32),
				scalar("width", 3, typeUint32),
				scalar("height", 4, typeUint32),
			),
			message("Approvals",
				repeated(messageField("items", 1, "Approval")),
				scalar("updated_at", 2, typeInt64),
				messageField("updated_by", 3, "User"),
			),
			message("Approval",
				scalar("screenshot_id", 1, typeString),
				enumField("state", 2, "ApprovalState"),
				messageField("reviewer", 3, "User"),
				scalar("reviewed_at", 4, typeInt64),
				scalar("comment", 5, typeString),
				scalar("image_hash", 6, typeFixed64),
			),
			message("GoldenSuite",
				scalar("name", 1, typeString),
				scalar("golden_dir", 2, typeString),
				repeated(scalar("screenshot_ids", 3, typeString)),
				messageField("revision", 4, "GitRevision"),
				scalar("checksum", 5, typeFixed32),
			),
			message("ReportSummary",
				scalar("id", 1, typeString),
				scalar("created_at", 2, typeInt64),
				scalar("project", 3, typeString),
				scalar("branch", 4, typeString),
				scalar("screenshot_count", 5, typeUint32),
				scalar("changed_count", 6, typeUint32),
				scalar("approved_count", 7, typeUint32),
				scalar("stored_at", 8, typeInt64),
			),
			message("PutReportRequest", messageField("report", 1, "ReportData")),
			message("PutReportResponse", messageField("summary", 1, "ReportSummary")),
			message("GetReportRequest", scalar("id", 1, typeString)),
			message("GetReportResponse", messageField("report", 1, "ReportData")),
			message("ListReportsRequest",
				scalar("project", 1, typeString),
				scalar("limit", 2, typeUint32),
			),
			message("ListReportsResponse", repeated(messageField("reports", 1, "ReportSummary"))),
			message("DeleteReportRequest", scalar("id", 1, typeString)),
			message("DeleteReportResponse", scalar("deleted", 1, typeBool)),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("ReportService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("PutReport"),
				method("GetReport"),
				method("ListReports"),
				method("DeleteReport"),
			},
		}},
	}
}

func qualified(name string) *string {
	return proto.String("." + string(PackageName) + "." + name)
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func scalar(name string, number int32, typ fieldType) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalar(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = qualified(typeName)
	return f
}

func enumField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalar(name, number, descriptorpb.FieldDescriptorProto_TYPE_ENUM)
	f.TypeName = qualified(typeName)
	return f
}

func repeated(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func inOneof(f *descriptorpb.FieldDescriptorProto, index int32) *descriptorpb.FieldDescriptorProto {
	f.OneofIndex = proto.Int32(index)
	return f
}

// mapField returns a map<string, V> field and registers its synthetic entry
// message on parent. value must be numbered 2 and named "value".
func mapField(parent *descriptorpb.DescriptorProto, name string, number int32, value *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	entryName := mapEntryName(name)
	parent.NestedType = append(parent.NestedType, &descriptorpb.DescriptorProto{
		Name:    proto.String(entryName),
		Field:   []*descriptorpb.FieldDescriptorProto{scalar("key", 1, typeString), value},
		Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
	})
	f := repeated(scalar(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE))
	f.TypeName = qualified(parent.GetName() + "." + entryName)
	return f
}

// mapEntryName follows protoc: golden_suites -> GoldenSuitesEntry.
func mapEntryName(field string) string {
	var b strings.Builder
	upper := true
	for _, r := range field {
		if r == '_' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(r)
	}
	b.WriteString("Entry")
	return b.String()
}

func enum(name string, values ...string) *descriptorpb.EnumDescriptorProto {
	ed := &descriptorpb.EnumDescriptorProto{Name: proto.String(name)}
	for i, v := range values {
		ed.Value = append(ed.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(v),
			Number: proto.Int32(int32(i)),
		})
	}
	return ed
}

func method(name string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  qualified(name + "Request"),
		OutputType: qualified(name + "Response"),
	}
}
