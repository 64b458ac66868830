package reportv1

import (
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

func (x *ReportData) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(reportDataDesc)
	setMessage(m, "meta", x.Meta.toDynamic())
	setMessages(m, "user_agents", x.UserAgents)
	setMessage(m, "screenshots", x.Screenshots.toDynamic())
	setMessage(m, "approvals", x.Approvals.toDynamic())
	return m
}

func (x *ReportData) fromDynamic(m protoreflect.Message) {
	*x = ReportData{
		Meta:        getMessage[ReportMeta](m, "meta"),
		UserAgents:  getMessages[UserAgent](m, "user_agents"),
		Screenshots: getMessage[Screenshots](m, "screenshots"),
		Approvals:   getMessage[Approvals](m, "approvals"),
	}
}

func (x *ReportMeta) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(reportMetaDesc)
	setString(m, "id", x.Id)
	setInt64(m, "created_at", x.CreatedAt)
	setMessage(m, "diff_base", x.DiffBase.toDynamic())
	setMessage(m, "user", x.User.toDynamic())
	setMessage(m, "git_status", x.GitStatus.toDynamic())
	setMessages(m, "library_versions", x.LibraryVersions)
	setMessages(m, "test_files", x.TestFiles)
	setString(m, "project", x.Project)
	setUint32(m, "duration_ms", x.DurationMs)
	setStringMap(m, "labels", x.Labels)
	return m
}

func (x *ReportMeta) fromDynamic(m protoreflect.Message) {
	*x = ReportMeta{
		Id:              getString(m, "id"),
		CreatedAt:       getInt64(m, "created_at"),
		DiffBase:        getMessage[DiffBase](m, "diff_base"),
		User:            getMessage[User](m, "user"),
		GitStatus:       getMessage[GitStatus](m, "git_status"),
		LibraryVersions: getMessages[LibraryVersion](m, "library_versions"),
		TestFiles:       getMessages[TestFile](m, "test_files"),
		Project:         getString(m, "project"),
		DurationMs:      getUint32(m, "duration_ms"),
		Labels:          getStringMap(m, "labels"),
	}
}

func (x *DiffBase) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(diffBaseDesc)
	// Oneof members carry presence, so zero values are still written.
	switch v := x.ValueOneof.(type) {
	case *DiffBase_Revision:
		rev := v.Revision.toDynamic()
		if rev == nil {
			rev = dynamicpb.NewMessage(gitRevisionDesc)
		}
		m.Set(fieldByName(m, "revision"), protoreflect.ValueOfMessage(rev))
	case *DiffBase_GoldenDir:
		m.Set(fieldByName(m, "golden_dir"), protoreflect.ValueOfString(v.GoldenDir))
	case *DiffBase_ReportUrl:
		m.Set(fieldByName(m, "report_url"), protoreflect.ValueOfString(v.ReportUrl))
	}
	return m
}

func (x *DiffBase) fromDynamic(m protoreflect.Message) {
	*x = DiffBase{}
	fd := m.WhichOneof(m.Descriptor().Oneofs().ByName("value_oneof"))
	if fd == nil {
		return
	}
	switch fd.Name() {
	case "revision":
		x.ValueOneof = &DiffBase_Revision{Revision: getMessage[GitRevision](m, "revision")}
	case "golden_dir":
		x.ValueOneof = &DiffBase_GoldenDir{GoldenDir: m.Get(fd).String()}
	case "report_url":
		x.ValueOneof = &DiffBase_ReportUrl{ReportUrl: m.Get(fd).String()}
	}
}

func (x *GitRevision) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(gitRevisionDesc)
	setString(m, "commit_sha", x.CommitSha)
	setString(m, "branch", x.Branch)
	setString(m, "tag", x.Tag)
	setInt64(m, "committed_at", x.CommittedAt)
	setMessage(m, "author", x.Author.toDynamic())
	setString(m, "subject", x.Subject)
	return m
}

func (x *GitRevision) fromDynamic(m protoreflect.Message) {
	*x = GitRevision{
		CommitSha:   getString(m, "commit_sha"),
		Branch:      getString(m, "branch"),
		Tag:         getString(m, "tag"),
		CommittedAt: getInt64(m, "committed_at"),
		Author:      getMessage[User](m, "author"),
		Subject:     getString(m, "subject"),
	}
}

func (x *User) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(userDesc)
	setString(m, "name", x.Name)
	setString(m, "email", x.Email)
	setString(m, "login", x.Login)
	return m
}

func (x *User) fromDynamic(m protoreflect.Message) {
	*x = User{
		Name:  getString(m, "name"),
		Email: getString(m, "email"),
		Login: getString(m, "login"),
	}
}

func (x *GitStatus) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(gitStatusDesc)
	setMessage(m, "head", x.Head.toDynamic())
	setBool(m, "dirty", x.Dirty)
	setStrings(m, "modified_files", x.ModifiedFiles)
	setStrings(m, "untracked_files", x.UntrackedFiles)
	setUint32(m, "ahead", x.Ahead)
	setUint32(m, "behind", x.Behind)
	return m
}

func (x *GitStatus) fromDynamic(m protoreflect.Message) {
	*x = GitStatus{
		Head:           getMessage[GitRevision](m, "head"),
		Dirty:          getBool(m, "dirty"),
		ModifiedFiles:  getStrings(m, "modified_files"),
		UntrackedFiles: getStrings(m, "untracked_files"),
		Ahead:          getUint32(m, "ahead"),
		Behind:         getUint32(m, "behind"),
	}
}

func (x *LibraryVersion) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(libraryVersionDesc)
	setString(m, "name", x.Name)
	setString(m, "version", x.Version)
	return m
}

func (x *LibraryVersion) fromDynamic(m protoreflect.Message) {
	*x = LibraryVersion{
		Name:    getString(m, "name"),
		Version: getString(m, "version"),
	}
}

func (x *TestFile) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(testFileDesc)
	setString(m, "path", x.Path)
	setStrings(m, "test_names", x.TestNames)
	setUint32(m, "screenshot_count", x.ScreenshotCount)
	return m
}

func (x *TestFile) fromDynamic(m protoreflect.Message) {
	*x = TestFile{
		Path:            getString(m, "path"),
		TestNames:       getStrings(m, "test_names"),
		ScreenshotCount: getUint32(m, "screenshot_count"),
	}
}

func (x *UserAgent) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(userAgentDesc)
	setString(m, "id", x.Id)
	setString(m, "browser", x.Browser)
	setString(m, "browser_version", x.BrowserVersion)
	setString(m, "os", x.Os)
	setEnum(m, "device_type", protoreflect.EnumNumber(x.DeviceType))
	setMessage(m, "viewport", x.Viewport.toDynamic())
	setFloat32(m, "device_pixel_ratio", x.DevicePixelRatio)
	setBool(m, "headless", x.Headless)
	return m
}

func (x *UserAgent) fromDynamic(m protoreflect.Message) {
	*x = UserAgent{
		Id:               getString(m, "id"),
		Browser:          getString(m, "browser"),
		BrowserVersion:   getString(m, "browser_version"),
		Os:               getString(m, "os"),
		DeviceType:       DeviceType(getEnum(m, "device_type")),
		Viewport:         getMessage[Size](m, "viewport"),
		DevicePixelRatio: getFloat32(m, "device_pixel_ratio"),
		Headless:         getBool(m, "headless"),
	}
}

func (x *Screenshots) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(screenshotsDesc)
	setMessages(m, "items", x.Items)
	setMessageMap(m, "golden_suites", x.GoldenSuites)
	setUint32(m, "total", x.Total)
	return m
}

func (x *Screenshots) fromDynamic(m protoreflect.Message) {
	*x = Screenshots{
		Items:        getMessages[Screenshot](m, "items"),
		GoldenSuites: getMessageMap[GoldenSuite](m, "golden_suites"),
		Total:        getUint32(m, "total"),
	}
}

func (x *Screenshot) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(screenshotDesc)
	setString(m, "id", x.Id)
	setString(m, "name", x.Name)
	setString(m, "test_file", x.TestFile)
	setString(m, "test_name", x.TestName)
	setString(m, "user_agent_id", x.UserAgentId)
	setString(m, "image_path", x.ImagePath)
	setString(m, "golden_image_path", x.GoldenImagePath)
	setEnum(m, "status", protoreflect.EnumNumber(x.Status))
	setMessage(m, "diff", x.Diff.toDynamic())
	setMessage(m, "clip", x.Clip.toDynamic())
	setStringMap(m, "annotations", x.Annotations)
	setString(m, "error", x.Error)
	return m
}

func (x *Screenshot) fromDynamic(m protoreflect.Message) {
	*x = Screenshot{
		Id:              getString(m, "id"),
		Name:            getString(m, "name"),
		TestFile:        getString(m, "test_file"),
		TestName:        getString(m, "test_name"),
		UserAgentId:     getString(m, "user_agent_id"),
		ImagePath:       getString(m, "image_path"),
		GoldenImagePath: getString(m, "golden_image_path"),
		Status:          ScreenshotStatus(getEnum(m, "status")),
		Diff:            getMessage[DiffImageResult](m, "diff"),
		Clip:            getMessage[Rect](m, "clip"),
		Annotations:     getStringMap(m, "annotations"),
		Error:           getString(m, "error"),
	}
}

func (x *DiffImageResult) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(diffImageResultDesc)
	setString(m, "diff_image_path", x.DiffImagePath)
	setUint64(m, "changed_pixels", x.ChangedPixels)
	setUint64(m, "total_pixels", x.TotalPixels)
	setFloat64(m, "diff_ratio", x.DiffRatio)
	setMessage(m, "actual_size", x.ActualSize.toDynamic())
	setMessage(m, "golden_size", x.GoldenSize.toDynamic())
	setMessages(m, "regions", x.Regions)
	setFloat32s(m, "channel_deltas", x.ChannelDeltas)
	setBytes(m, "thumbnail", x.Thumbnail)
	setBool(m, "size_mismatch", x.SizeMismatch)
	setInt32(m, "offset_x", x.OffsetX)
	setInt32(m, "offset_y", x.OffsetY)
	return m
}

func (x *DiffImageResult) fromDynamic(m protoreflect.Message) {
	*x = DiffImageResult{
		DiffImagePath: getString(m, "diff_image_path"),
		ChangedPixels: getUint64(m, "changed_pixels"),
		TotalPixels:   getUint64(m, "total_pixels"),
		DiffRatio:     getFloat64(m, "diff_ratio"),
		ActualSize:    getMessage[Size](m, "actual_size"),
		GoldenSize:    getMessage[Size](m, "golden_size"),
		Regions:       getMessages[Rect](m, "regions"),
		ChannelDeltas: getFloat32s(m, "channel_deltas"),
		Thumbnail:     getBytes(m, "thumbnail"),
		SizeMismatch:  getBool(m, "size_mismatch"),
		OffsetX:       getInt32(m, "offset_x"),
		OffsetY:       getInt32(m, "offset_y"),
	}
}

func (x *Size) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(sizeDesc)
	setUint32(m, "width", x.Width)
	setUint32(m, "height", x.Height)
	return m
}

func (x *Size) fromDynamic(m protoreflect.Message) {
	*x = Size{
		Width:  getUint32(m, "width"),
		Height: getUint32(m, "height"),
	}
}

func (x *Rect) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(rectDesc)
	setInt32(m, "x", x.X)
	setInt32(m, "y", x.Y)
	setUint32(m, "width", x.Width)
	setUint32(m, "height", x.Height)
	return m
}

func (x *Rect) fromDynamic(m protoreflect.Message) {
	*x = Rect{
		X:      getInt32(m, "x"),
		Y:      getInt32(m, "y"),
		Width:  getUint32(m, "width"),
		Height: getUint32(m, "height"),
	}
}

func (x *Approvals) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(approvalsDesc)
	setMessages(m, "items", x.Items)
	setInt64(m, "updated_at", x.UpdatedAt)
	setMessage(m, "updated_by", x.UpdatedBy.toDynamic())
	return m
}

func (x *Approvals) fromDynamic(m protoreflect.Message) {
	*x = Approvals{
		Items:     getMessages[Approval](m, "items"),
		UpdatedAt: getInt64(m, "updated_at"),
		UpdatedBy: getMessage[User](m, "updated_by"),
	}
}

func (x *Approval) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(approvalDesc)
	setString(m, "screenshot_id", x.ScreenshotId)
	setEnum(m, "state", protoreflect.EnumNumber(x.State))
	setMessage(m, "reviewer", x.Reviewer.toDynamic())
	setInt64(m, "reviewed_at", x.ReviewedAt)
	setString(m, "comment", x.Comment)
	setUint64(m, "image_hash", x.ImageHash)
	return m
}

func (x *Approval) fromDynamic(m protoreflect.Message) {
	*x = Approval{
		ScreenshotId: getString(m, "screenshot_id"),
		State:        ApprovalState(getEnum(m, "state")),
		Reviewer:     getMessage[User](m, "reviewer"),
		ReviewedAt:   getInt64(m, "reviewed_at"),
		Comment:      getString(m, "comment"),
		ImageHash:    getUint64(m, "image_hash"),
	}
}

func (x *GoldenSuite) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(goldenSuiteDesc)
	setString(m, "name", x.Name)
	setString(m, "golden_dir", x.GoldenDir)
	setStrings(m, "screenshot_ids", x.ScreenshotIds)
	setMessage(m, "revision", x.Revision.toDynamic())
	setUint32(m, "checksum", x.Checksum)
	return m
}

func (x *GoldenSuite) fromDynamic(m protoreflect.Message) {
	*x = GoldenSuite{
		Name:          getString(m, "name"),
		GoldenDir:     getString(m, "golden_dir"),
		ScreenshotIds: getStrings(m, "screenshot_ids"),
		Revision:      getMessage[GitRevision](m, "revision"),
		Checksum:      getUint32(m, "checksum"),
	}
}

func (x *ReportSummary) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(reportSummaryDesc)
	setString(m, "id", x.Id)
	setInt64(m, "created_at", x.CreatedAt)
	setString(m, "project", x.Project)
	setString(m, "branch", x.Branch)
	setUint32(m, "screenshot_count", x.ScreenshotCount)
	setUint32(m, "changed_count", x.ChangedCount)
	setUint32(m, "approved_count", x.ApprovedCount)
	setInt64(m, "stored_at", x.StoredAt)
	return m
}

func (x *ReportSummary) fromDynamic(m protoreflect.Message) {
	*x = ReportSummary{
		Id:              getString(m, "id"),
		CreatedAt:       getInt64(m, "created_at"),
		Project:         getString(m, "project"),
		Branch:          getString(m, "branch"),
		ScreenshotCount: getUint32(m, "screenshot_count"),
		ChangedCount:    getUint32(m, "changed_count"),
		ApprovedCount:   getUint32(m, "approved_count"),
		StoredAt:        getInt64(m, "stored_at"),
	}
}

func (x *PutReportRequest) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(putReportRequestDesc)
	setMessage(m, "report", x.Report.toDynamic())
	return m
}

func (x *PutReportRequest) fromDynamic(m protoreflect.Message) {
	*x = PutReportRequest{
		Report: getMessage[ReportData](m, "report"),
	}
}

func (x *PutReportResponse) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(putReportResponseDesc)
	setMessage(m, "summary", x.Summary.toDynamic())
	return m
}

func (x *PutReportResponse) fromDynamic(m protoreflect.Message) {
	*x = PutReportResponse{
		Summary: getMessage[ReportSummary](m, "summary"),
	}
}

func (x *GetReportRequest) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(getReportRequestDesc)
	setString(m, "id", x.Id)
	return m
}

func (x *GetReportRequest) fromDynamic(m protoreflect.Message) {
	*x = GetReportRequest{
		Id: getString(m, "id"),
	}
}

func (x *GetReportResponse) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(getReportResponseDesc)
	setMessage(m, "report", x.Report.toDynamic())
	return m
}

func (x *GetReportResponse) fromDynamic(m protoreflect.Message) {
	*x = GetReportResponse{
		Report: getMessage[ReportData](m, "report"),
	}
}

func (x *ListReportsRequest) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(listReportsRequestDesc)
	setString(m, "project", x.Project)
	setUint32(m, "limit", x.Limit)
	return m
}

func (x *ListReportsRequest) fromDynamic(m protoreflect.Message) {
	*x = ListReportsRequest{
		Project: getString(m, "project"),
		Limit:   getUint32(m, "limit"),
	}
}

func (x *ListReportsResponse) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(listReportsResponseDesc)
	setMessages(m, "reports", x.Reports)
	return m
}

func (x *ListReportsResponse) fromDynamic(m protoreflect.Message) {
	*x = ListReportsResponse{
		Reports: getMessages[ReportSummary](m, "reports"),
	}
}

func (x *DeleteReportRequest) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(deleteReportRequestDesc)
	setString(m, "id", x.Id)
	return m
}

func (x *DeleteReportRequest) fromDynamic(m protoreflect.Message) {
	*x = DeleteReportRequest{
		Id: getString(m, "id"),
	}
}

func (x *DeleteReportResponse) toDynamic() protoreflect.Message {
	if x == nil {
		return nil
	}
	m := dynamicpb.NewMessage(deleteReportResponseDesc)
	setBool(m, "deleted", x.Deleted)
	return m
}

func (x *DeleteReportResponse) fromDynamic(m protoreflect.Message) {
	*x = DeleteReportResponse{
		Deleted: getBool(m, "deleted"),
	}
}
