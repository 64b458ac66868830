package reportv1

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"shotdiff/internal/protoobject"
)

func (*ReportData) Descriptor() protoreflect.MessageDescriptor { return reportDataDesc }
func (x *ReportData) Marshal() ([]byte, error) { return marshal(x, reportDataDesc) }
func (x *ReportData) Unmarshal(b []byte) error { return unmarshal(b, x, reportDataDesc) }
func (x *ReportData) MarshalJSON() ([]byte, error) { return marshalJSON(x, reportDataDesc) }
func (x *ReportData) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, reportDataDesc) }
func (x *ReportData) ToObject(o protoobject.Options) map[string]any { return toObject(x, reportDataDesc, o) }
func (x *ReportData) FromObject(obj map[string]any) error { return fromObject(obj, x, reportDataDesc) }

func (*ReportMeta) Descriptor() protoreflect.MessageDescriptor { return reportMetaDesc }
func (x *ReportMeta) Marshal() ([]byte, error) { return marshal(x, reportMetaDesc) }
func (x *ReportMeta) Unmarshal(b []byte) error { return unmarshal(b, x, reportMetaDesc) }
func (x *ReportMeta) MarshalJSON() ([]byte, error) { return marshalJSON(x, reportMetaDesc) }
func (x *ReportMeta) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, reportMetaDesc) }
func (x *ReportMeta) ToObject(o protoobject.Options) map[string]any { return toObject(x, reportMetaDesc, o) }
func (x *ReportMeta) FromObject(obj map[string]any) error { return fromObject(obj, x, reportMetaDesc) }

func (*DiffBase) Descriptor() protoreflect.MessageDescriptor { return diffBaseDesc }
func (x *DiffBase) Marshal() ([]byte, error) { return marshal(x, diffBaseDesc) }
func (x *DiffBase) Unmarshal(b []byte) error { return unmarshal(b, x, diffBaseDesc) }
func (x *DiffBase) MarshalJSON() ([]byte, error) { return marshalJSON(x, diffBaseDesc) }
func (x *DiffBase) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, diffBaseDesc) }
func (x *DiffBase) ToObject(o protoobject.Options) map[string]any { return toObject(x, diffBaseDesc, o) }
func (x *DiffBase) FromObject(obj map[string]any) error { return fromObject(obj, x, diffBaseDesc) }

func (*GitRevision) Descriptor() protoreflect.MessageDescriptor { return gitRevisionDesc }
func (x *GitRevision) Marshal() ([]byte, error) { return marshal(x, gitRevisionDesc) }
func (x *GitRevision) Unmarshal(b []byte) error { return unmarshal(b, x, gitRevisionDesc) }
func (x *GitRevision) MarshalJSON() ([]byte, error) { return marshalJSON(x, gitRevisionDesc) }
func (x *GitRevision) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, gitRevisionDesc) }
func (x *GitRevision) ToObject(o protoobject.Options) map[string]any { return toObject(x, gitRevisionDesc, o) }
func (x *GitRevision) FromObject(obj map[string]any) error { return fromObject(obj, x, gitRevisionDesc) }

func (*User) Descriptor() protoreflect.MessageDescriptor { return userDesc }
func (x *User) Marshal() ([]byte, error) { return marshal(x, userDesc) }
func (x *User) Unmarshal(b []byte) error { return unmarshal(b, x, userDesc) }
func (x *User) MarshalJSON() ([]byte, error) { return marshalJSON(x, userDesc) }
func (x *User) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, userDesc) }
func (x *User) ToObject(o protoobject.Options) map[string]any { return toObject(x, userDesc, o) }
func (x *User) FromObject(obj map[string]any) error { return fromObject(obj, x, userDesc) }

func (*GitStatus) Descriptor() protoreflect.MessageDescriptor { return gitStatusDesc }
func (x *GitStatus) Marshal() ([]byte, error) { return marshal(x, gitStatusDesc) }
func (x *GitStatus) Unmarshal(b []byte) error { return unmarshal(b, x, gitStatusDesc) }
func (x *GitStatus) MarshalJSON() ([]byte, error) { return marshalJSON(x, gitStatusDesc) }
func (x *GitStatus) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, gitStatusDesc) }
func (x *GitStatus) ToObject(o protoobject.Options) map[string]any { return toObject(x, gitStatusDesc, o) }
func (x *GitStatus) FromObject(obj map[string]any) error { return fromObject(obj, x, gitStatusDesc) }

func (*LibraryVersion) Descriptor() protoreflect.MessageDescriptor { return libraryVersionDesc }
func (x *LibraryVersion) Marshal() ([]byte, error) { return marshal(x, libraryVersionDesc) }
func (x *LibraryVersion) Unmarshal(b []byte) error { return unmarshal(b, x, libraryVersionDesc) }
func (x *LibraryVersion) MarshalJSON() ([]byte, error) { return marshalJSON(x, libraryVersionDesc) }
func (x *LibraryVersion) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, libraryVersionDesc) }
func (x *LibraryVersion) ToObject(o protoobject.Options) map[string]any { return toObject(x, libraryVersionDesc, o) }
func (x *LibraryVersion) FromObject(obj map[string]any) error { return fromObject(obj, x, libraryVersionDesc) }

func (*TestFile) Descriptor() protoreflect.MessageDescriptor { return testFileDesc }
func (x *TestFile) Marshal() ([]byte, error) { return marshal(x, testFileDesc) }
func (x *TestFile) Unmarshal(b []byte) error { return unmarshal(b, x, testFileDesc) }
func (x *TestFile) MarshalJSON() ([]byte, error) { return marshalJSON(x, testFileDesc) }
func (x *TestFile) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, testFileDesc) }
func (x *TestFile) ToObject(o protoobject.Options) map[string]any { return toObject(x, testFileDesc, o) }
func (x *TestFile) FromObject(obj map[string]any) error { return fromObject(obj, x, testFileDesc) }

func (*UserAgent) Descriptor() protoreflect.MessageDescriptor { return userAgentDesc }
func (x *UserAgent) Marshal() ([]byte, error) { return marshal(x, userAgentDesc) }
func (x *UserAgent) Unmarshal(b []byte) error { return unmarshal(b, x, userAgentDesc) }
func (x *UserAgent) MarshalJSON() ([]byte, error) { return marshalJSON(x, userAgentDesc) }
func (x *UserAgent) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, userAgentDesc) }
func (x *UserAgent) ToObject(o protoobject.Options) map[string]any { return toObject(x, userAgentDesc, o) }
func (x *UserAgent) FromObject(obj map[string]any) error { return fromObject(obj, x, userAgentDesc) }

func (*Screenshots) Descriptor() protoreflect.MessageDescriptor { return screenshotsDesc }
func (x *Screenshots) Marshal() ([]byte, error) { return marshal(x, screenshotsDesc) }
func (x *Screenshots) Unmarshal(b []byte) error { return unmarshal(b, x, screenshotsDesc) }
func (x *Screenshots) MarshalJSON() ([]byte, error) { return marshalJSON(x, screenshotsDesc) }
func (x *Screenshots) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, screenshotsDesc) }
func (x *Screenshots) ToObject(o protoobject.Options) map[string]any { return toObject(x, screenshotsDesc, o) }
func (x *Screenshots) FromObject(obj map[string]any) error { return fromObject(obj, x, screenshotsDesc) }

func (*Screenshot) Descriptor() protoreflect.MessageDescriptor { return screenshotDesc }
func (x *Screenshot) Marshal() ([]byte, error) { return marshal(x, screenshotDesc) }
func (x *Screenshot) Unmarshal(b []byte) error { return unmarshal(b, x, screenshotDesc) }
func (x *Screenshot) MarshalJSON() ([]byte, error) { return marshalJSON(x, screenshotDesc) }
func (x *Screenshot) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, screenshotDesc) }
func (x *Screenshot) ToObject(o protoobject.Options) map[string]any { return toObject(x, screenshotDesc, o) }
func (x *Screenshot) FromObject(obj map[string]any) error { return fromObject(obj, x, screenshotDesc) }

func (*DiffImageResult) Descriptor() protoreflect.MessageDescriptor { return diffImageResultDesc }
func (x *DiffImageResult) Marshal() ([]byte, error) { return marshal(x, diffImageResultDesc) }
func (x *DiffImageResult) Unmarshal(b []byte) error { return unmarshal(b, x, diffImageResultDesc) }
func (x *DiffImageResult) MarshalJSON() ([]byte, error) { return marshalJSON(x, diffImageResultDesc) }
func (x *DiffImageResult) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, diffImageResultDesc) }
func (x *DiffImageResult) ToObject(o protoobject.Options) map[string]any { return toObject(x, diffImageResultDesc, o) }
func (x *DiffImageResult) FromObject(obj map[string]any) error { return fromObject(obj, x, diffImageResultDesc) }

func (*Size) Descriptor() protoreflect.MessageDescriptor { return sizeDesc }
func (x *Size) Marshal() ([]byte, error) { return marshal(x, sizeDesc) }
func (x *Size) Unmarshal(b []byte) error { return unmarshal(b, x, sizeDesc) }
func (x *Size) MarshalJSON() ([]byte, error) { return marshalJSON(x, sizeDesc) }
func (x *Size) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, sizeDesc) }
func (x *Size) ToObject(o protoobject.Options) map[string]any { return toObject(x, sizeDesc, o) }
func (x *Size) FromObject(obj map[string]any) error { return fromObject(obj, x, sizeDesc) }

func (*Rect) Descriptor() protoreflect.MessageDescriptor { return rectDesc }
func (x *Rect) Marshal() ([]byte, error) { return marshal(x, rectDesc) }
func (x *Rect) Unmarshal(b []byte) error { return unmarshal(b, x, rectDesc) }
func (x *Rect) MarshalJSON() ([]byte, error) { return marshalJSON(x, rectDesc) }
func (x *Rect) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, rectDesc) }
func (x *Rect) ToObject(o protoobject.Options) map[string]any { return toObject(x, rectDesc, o) }
func (x *Rect) FromObject(obj map[string]any) error { return fromObject(obj, x, rectDesc) }

func (*Approvals) Descriptor() protoreflect.MessageDescriptor { return approvalsDesc }
func (x *Approvals) Marshal() ([]byte, error) { return marshal(x, approvalsDesc) }
func (x *Approvals) Unmarshal(b []byte) error { return unmarshal(b, x, approvalsDesc) }
func (x *Approvals) MarshalJSON() ([]byte, error) { return marshalJSON(x, approvalsDesc) }
func (x *Approvals) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, approvalsDesc) }
func (x *Approvals) ToObject(o protoobject.Options) map[string]any { return toObject(x, approvalsDesc, o) }
func (x *Approvals) FromObject(obj map[string]any) error { return fromObject(obj, x, approvalsDesc) }

func (*Approval) Descriptor() protoreflect.MessageDescriptor { return approvalDesc }
func (x *Approval) Marshal() ([]byte, error) { return marshal(x, approvalDesc) }
func (x *Approval) Unmarshal(b []byte) error { return unmarshal(b, x, approvalDesc) }
func (x *Approval) MarshalJSON() ([]byte, error) { return marshalJSON(x, approvalDesc) }
func (x *Approval) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, approvalDesc) }
func (x *Approval) ToObject(o protoobject.Options) map[string]any { return toObject(x, approvalDesc, o) }
func (x *Approval) FromObject(obj map[string]any) error { return fromObject(obj, x, approvalDesc) }

func (*GoldenSuite) Descriptor() protoreflect.MessageDescriptor { return goldenSuiteDesc }
func (x *GoldenSuite) Marshal() ([]byte, error) { return marshal(x, goldenSuiteDesc) }
func (x *GoldenSuite) Unmarshal(b []byte) error { return unmarshal(b, x, goldenSuiteDesc) }
func (x *GoldenSuite) MarshalJSON() ([]byte, error) { return marshalJSON(x, goldenSuiteDesc) }
func (x *GoldenSuite) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, goldenSuiteDesc) }
func (x *GoldenSuite) ToObject(o protoobject.Options) map[string]any { return toObject(x, goldenSuiteDesc, o) }
func (x *GoldenSuite) FromObject(obj map[string]any) error { return fromObject(obj, x, goldenSuiteDesc) }

func (*ReportSummary) Descriptor() protoreflect.MessageDescriptor { return reportSummaryDesc }
func (x *ReportSummary) Marshal() ([]byte, error) { return marshal(x, reportSummaryDesc) }
func (x *ReportSummary) Unmarshal(b []byte) error { return unmarshal(b, x, reportSummaryDesc) }
func (x *ReportSummary) MarshalJSON() ([]byte, error) { return marshalJSON(x, reportSummaryDesc) }
func (x *ReportSummary) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, reportSummaryDesc) }
func (x *ReportSummary) ToObject(o protoobject.Options) map[string]any { return toObject(x, reportSummaryDesc, o) }
func (x *ReportSummary) FromObject(obj map[string]any) error { return fromObject(obj, x, reportSummaryDesc) }

func (*PutReportRequest) Descriptor() protoreflect.MessageDescriptor { return putReportRequestDesc }
func (x *PutReportRequest) Marshal() ([]byte, error) { return marshal(x, putReportRequestDesc) }
func (x *PutReportRequest) Unmarshal(b []byte) error { return unmarshal(b, x, putReportRequestDesc) }
func (x *PutReportRequest) MarshalJSON() ([]byte, error) { return marshalJSON(x, putReportRequestDesc) }
func (x *PutReportRequest) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, putReportRequestDesc) }
func (x *PutReportRequest) ToObject(o protoobject.Options) map[string]any { return toObject(x, putReportRequestDesc, o) }
func (x *PutReportRequest) FromObject(obj map[string]any) error { return fromObject(obj, x, putReportRequestDesc) }

func (*PutReportResponse) Descriptor() protoreflect.MessageDescriptor { return putReportResponseDesc }
func (x *PutReportResponse) Marshal() ([]byte, error) { return marshal(x, putReportResponseDesc) }
func (x *PutReportResponse) Unmarshal(b []byte) error { return unmarshal(b, x, putReportResponseDesc) }
func (x *PutReportResponse) MarshalJSON() ([]byte, error) { return marshalJSON(x, putReportResponseDesc) }
func (x *PutReportResponse) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, putReportResponseDesc) }
func (x *PutReportResponse) ToObject(o protoobject.Options) map[string]any { return toObject(x, putReportResponseDesc, o) }
func (x *PutReportResponse) FromObject(obj map[string]any) error { return fromObject(obj, x, putReportResponseDesc) }

func (*GetReportRequest) Descriptor() protoreflect.MessageDescriptor { return getReportRequestDesc }
func (x *GetReportRequest) Marshal() ([]byte, error) { return marshal(x, getReportRequestDesc) }
func (x *GetReportRequest) Unmarshal(b []byte) error { return unmarshal(b, x, getReportRequestDesc) }
func (x *GetReportRequest) MarshalJSON() ([]byte, error) { return marshalJSON(x, getReportRequestDesc) }
func (x *GetReportRequest) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, getReportRequestDesc) }
func (x *GetReportRequest) ToObject(o protoobject.Options) map[string]any { return toObject(x, getReportRequestDesc, o) }
func (x *GetReportRequest) FromObject(obj map[string]any) error { return fromObject(obj, x, getReportRequestDesc) }

func (*GetReportResponse) Descriptor() protoreflect.MessageDescriptor { return getReportResponseDesc }
func (x *GetReportResponse) Marshal() ([]byte, error) { return marshal(x, getReportResponseDesc) }
func (x *GetReportResponse) Unmarshal(b []byte) error { return unmarshal(b, x, getReportResponseDesc) }
func (x *GetReportResponse) MarshalJSON() ([]byte, error) { return marshalJSON(x, getReportResponseDesc) }
func (x *GetReportResponse) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, getReportResponseDesc) }
func (x *GetReportResponse) ToObject(o protoobject.Options) map[string]any { return toObject(x, getReportResponseDesc, o) }
func (x *GetReportResponse) FromObject(obj map[string]any) error { return fromObject(obj, x, getReportResponseDesc) }

func (*ListReportsRequest) Descriptor() protoreflect.MessageDescriptor { return listReportsRequestDesc }
func (x *ListReportsRequest) Marshal() ([]byte, error) { return marshal(x, listReportsRequestDesc) }
func (x *ListReportsRequest) Unmarshal(b []byte) error { return unmarshal(b, x, listReportsRequestDesc) }
func (x *ListReportsRequest) MarshalJSON() ([]byte, error) { return marshalJSON(x, listReportsRequestDesc) }
func (x *ListReportsRequest) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, listReportsRequestDesc) }
func (x *ListReportsRequest) ToObject(o protoobject.Options) map[string]any { return toObject(x, listReportsRequestDesc, o) }
func (x *ListReportsRequest) FromObject(obj map[string]any) error { return fromObject(obj, x, listReportsRequestDesc) }

func (*ListReportsResponse) Descriptor() protoreflect.MessageDescriptor { return listReportsResponseDesc }
func (x *ListReportsResponse) Marshal() ([]byte, error) { return marshal(x, listReportsResponseDesc) }
func (x *ListReportsResponse) Unmarshal(b []byte) error { return unmarshal(b, x, listReportsResponseDesc) }
func (x *ListReportsResponse) MarshalJSON() ([]byte, error) { return marshalJSON(x, listReportsResponseDesc) }
func (x *ListReportsResponse) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, listReportsResponseDesc) }
func (x *ListReportsResponse) ToObject(o protoobject.Options) map[string]any { return toObject(x, listReportsResponseDesc, o) }
func (x *ListReportsResponse) FromObject(obj map[string]any) error { return fromObject(obj, x, listReportsResponseDesc) }

func (*DeleteReportRequest) Descriptor() protoreflect.MessageDescriptor { return deleteReportRequestDesc }
func (x *DeleteReportRequest) Marshal() ([]byte, error) { return marshal(x, deleteReportRequestDesc) }
func (x *DeleteReportRequest) Unmarshal(b []byte) error { return unmarshal(b, x, deleteReportRequestDesc) }
func (x *DeleteReportRequest) MarshalJSON() ([]byte, error) { return marshalJSON(x, deleteReportRequestDesc) }
func (x *DeleteReportRequest) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, deleteReportRequestDesc) }
func (x *DeleteReportRequest) ToObject(o protoobject.Options) map[string]any { return toObject(x, deleteReportRequestDesc, o) }
func (x *DeleteReportRequest) FromObject(obj map[string]any) error { return fromObject(obj, x, deleteReportRequestDesc) }

func (*DeleteReportResponse) Descriptor() protoreflect.MessageDescriptor { return deleteReportResponseDesc }
func (x *DeleteReportResponse) Marshal() ([]byte, error) { return marshal(x, deleteReportResponseDesc) }
func (x *DeleteReportResponse) Unmarshal(b []byte) error { return unmarshal(b, x, deleteReportResponseDesc) }
func (x *DeleteReportResponse) MarshalJSON() ([]byte, error) { return marshalJSON(x, deleteReportResponseDesc) }
func (x *DeleteReportResponse) UnmarshalJSON(b []byte) error { return unmarshalJSON(b, x, deleteReportResponseDesc) }
func (x *DeleteReportResponse) ToObject(o protoobject.Options) map[string]any { return toObject(x, deleteReportResponseDesc, o) }
func (x *DeleteReportResponse) FromObject(obj map[string]any) error { return fromObject(obj, x, deleteReportResponseDesc) }
