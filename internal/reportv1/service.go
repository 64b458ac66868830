package reportv1

// ReportSummary is the listing view of a stored report.
type ReportSummary struct {
	Id              string
	CreatedAt       int64
	Project         string
	Branch          string
	ScreenshotCount uint32
	ChangedCount    uint32
	ApprovedCount   uint32
	StoredAt        int64
}

func (x *ReportSummary) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReportSummary) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *ReportSummary) GetProject() string {
	if x != nil {
		return x.Project
	}
	return ""
}

func (x *ReportSummary) GetBranch() string {
	if x != nil {
		return x.Branch
	}
	return ""
}

func (x *ReportSummary) GetScreenshotCount() uint32 {
	if x != nil {
		return x.ScreenshotCount
	}
	return 0
}

func (x *ReportSummary) GetChangedCount() uint32 {
	if x != nil {
		return x.ChangedCount
	}
	return 0
}

func (x *ReportSummary) GetApprovedCount() uint32 {
	if x != nil {
		return x.ApprovedCount
	}
	return 0
}

func (x *ReportSummary) GetStoredAt() int64 {
	if x != nil {
		return x.StoredAt
	}
	return 0
}

type PutReportRequest struct {
	Report *ReportData
}

func (x *PutReportRequest) GetReport() *ReportData {
	if x != nil {
		return x.Report
	}
	return nil
}

type PutReportResponse struct {
	Summary *ReportSummary
}

func (x *PutReportResponse) GetSummary() *ReportSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type GetReportRequest struct {
	Id string
}

func (x *GetReportRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetReportResponse struct {
	Report *ReportData
}

func (x *GetReportResponse) GetReport() *ReportData {
	if x != nil {
		return x.Report
	}
	return nil
}

type ListReportsRequest struct {
	Project string
	Limit   uint32
}

func (x *ListReportsRequest) GetProject() string {
	if x != nil {
		return x.Project
	}
	return ""
}

func (x *ListReportsRequest) GetLimit() uint32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListReportsResponse struct {
	Reports []*ReportSummary
}

func (x *ListReportsResponse) GetReports() []*ReportSummary {
	if x != nil {
		return x.Reports
	}
	return nil
}

type DeleteReportRequest struct {
	Id string
}

func (x *DeleteReportRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteReportResponse struct {
	Deleted bool
}

func (x *DeleteReportResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}
