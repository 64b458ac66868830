package reportv1

// ReportData is the root of a screenshot test report.
type ReportData struct {
	Meta        *ReportMeta
	UserAgents  []*UserAgent
	Screenshots *Screenshots
	Approvals   *Approvals
}

func (x *ReportData) GetMeta() *ReportMeta {
	if x != nil {
		return x.Meta
	}
	return nil
}

func (x *ReportData) GetUserAgents() []*UserAgent {
	if x != nil {
		return x.UserAgents
	}
	return nil
}

func (x *ReportData) GetScreenshots() *Screenshots {
	if x != nil {
		return x.Screenshots
	}
	return nil
}

func (x *ReportData) GetApprovals() *Approvals {
	if x != nil {
		return x.Approvals
	}
	return nil
}

// ReportMeta describes the run that produced a report.
type ReportMeta struct {
	Id              string
	CreatedAt       int64
	DiffBase        *DiffBase
	User            *User
	GitStatus       *GitStatus
	LibraryVersions []*LibraryVersion
	TestFiles       []*TestFile
	Project         string
	DurationMs      uint32
	Labels          map[string]string
}

func (x *ReportMeta) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReportMeta) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *ReportMeta) GetDiffBase() *DiffBase {
	if x != nil {
		return x.DiffBase
	}
	return nil
}

func (x *ReportMeta) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *ReportMeta) GetGitStatus() *GitStatus {
	if x != nil {
		return x.GitStatus
	}
	return nil
}

func (x *ReportMeta) GetLibraryVersions() []*LibraryVersion {
	if x != nil {
		return x.LibraryVersions
	}
	return nil
}

func (x *ReportMeta) GetTestFiles() []*TestFile {
	if x != nil {
		return x.TestFiles
	}
	return nil
}

func (x *ReportMeta) GetProject() string {
	if x != nil {
		return x.Project
	}
	return ""
}

func (x *ReportMeta) GetDurationMs() uint32 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

func (x *ReportMeta) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

// DiffBase names what the screenshots were compared against. At most one
// alternative of ValueOneof is set.
type DiffBase struct {
	// Types that are assignable to ValueOneof:
	//
	//	*DiffBase_Revision
	//	*DiffBase_GoldenDir
	//	*DiffBase_ReportUrl
	ValueOneof isDiffBase_ValueOneof
}

type isDiffBase_ValueOneof interface {
	isDiffBase_ValueOneof()
}

type DiffBase_Revision struct {
	Revision *GitRevision
}

type DiffBase_GoldenDir struct {
	GoldenDir string
}

type DiffBase_ReportUrl struct {
	ReportUrl string
}

func (*DiffBase_Revision) isDiffBase_ValueOneof()  {}
func (*DiffBase_GoldenDir) isDiffBase_ValueOneof() {}
func (*DiffBase_ReportUrl) isDiffBase_ValueOneof() {}

func (x *DiffBase) GetValueOneof() isDiffBase_ValueOneof {
	if x != nil {
		return x.ValueOneof
	}
	return nil
}

func (x *DiffBase) GetRevision() *GitRevision {
	if v, ok := x.GetValueOneof().(*DiffBase_Revision); ok {
		return v.Revision
	}
	return nil
}

func (x *DiffBase) GetGoldenDir() string {
	if v, ok := x.GetValueOneof().(*DiffBase_GoldenDir); ok {
		return v.GoldenDir
	}
	return ""
}

func (x *DiffBase) GetReportUrl() string {
	if v, ok := x.GetValueOneof().(*DiffBase_ReportUrl); ok {
		return v.ReportUrl
	}
	return ""
}

type GitRevision struct {
	CommitSha   string
	Branch      string
	Tag         string
	CommittedAt int64
	Author      *User
	Subject     string
}

func (x *GitRevision) GetCommitSha() string {
	if x != nil {
		return x.CommitSha
	}
	return ""
}

func (x *GitRevision) GetBranch() string {
	if x != nil {
		return x.Branch
	}
	return ""
}

func (x *GitRevision) GetTag() string {
	if x != nil {
		return x.Tag
	}
	return ""
}

func (x *GitRevision) GetCommittedAt() int64 {
	if x != nil {
		return x.CommittedAt
	}
	return 0
}

func (x *GitRevision) GetAuthor() *User {
	if x != nil {
		return x.Author
	}
	return nil
}

func (x *GitRevision) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

type User struct {
	Name  string
	Email string
	Login string
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetLogin() string {
	if x != nil {
		return x.Login
	}
	return ""
}

// GitStatus is the working tree state when the report was taken.
type GitStatus struct {
	Head           *GitRevision
	Dirty          bool
	ModifiedFiles  []string
	UntrackedFiles []string
	Ahead          uint32
	Behind         uint32
}

func (x *GitStatus) GetHead() *GitRevision {
	if x != nil {
		return x.Head
	}
	return nil
}

func (x *GitStatus) GetDirty() bool {
	if x != nil {
		return x.Dirty
	}
	return false
}

func (x *GitStatus) GetModifiedFiles() []string {
	if x != nil {
		return x.ModifiedFiles
	}
	return nil
}

func (x *GitStatus) GetUntrackedFiles() []string {
	if x != nil {
		return x.UntrackedFiles
	}
	return nil
}

func (x *GitStatus) GetAhead() uint32 {
	if x != nil {
		return x.Ahead
	}
	return 0
}

func (x *GitStatus) GetBehind() uint32 {
	if x != nil {
		return x.Behind
	}
	return 0
}

type LibraryVersion struct {
	Name    string
	Version string
}

func (x *LibraryVersion) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *LibraryVersion) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

type TestFile struct {
	Path            string
	TestNames       []string
	ScreenshotCount uint32
}

func (x *TestFile) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *TestFile) GetTestNames() []string {
	if x != nil {
		return x.TestNames
	}
	return nil
}

func (x *TestFile) GetScreenshotCount() uint32 {
	if x != nil {
		return x.ScreenshotCount
	}
	return 0
}

// UserAgent is a browser profile screenshots were captured with.
type UserAgent struct {
	Id               string
	Browser          string
	BrowserVersion   string
	Os               string
	DeviceType       DeviceType
	Viewport         *Size
	DevicePixelRatio float32
	Headless         bool
}

func (x *UserAgent) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UserAgent) GetBrowser() string {
	if x != nil {
		return x.Browser
	}
	return ""
}

func (x *UserAgent) GetBrowserVersion() string {
	if x != nil {
		return x.BrowserVersion
	}
	return ""
}

func (x *UserAgent) GetOs() string {
	if x != nil {
		return x.Os
	}
	return ""
}

func (x *UserAgent) GetDeviceType() DeviceType {
	if x != nil {
		return x.DeviceType
	}
	return DeviceType_DEVICE_TYPE_UNSPECIFIED
}

func (x *UserAgent) GetViewport() *Size {
	if x != nil {
		return x.Viewport
	}
	return nil
}

func (x *UserAgent) GetDevicePixelRatio() float32 {
	if x != nil {
		return x.DevicePixelRatio
	}
	return 0
}

func (x *UserAgent) GetHeadless() bool {
	if x != nil {
		return x.Headless
	}
	return false
}

type Screenshots struct {
	Items        []*Screenshot
	GoldenSuites map[string]*GoldenSuite
	Total        uint32
}

func (x *Screenshots) GetItems() []*Screenshot {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Screenshots) GetGoldenSuites() map[string]*GoldenSuite {
	if x != nil {
		return x.GoldenSuites
	}
	return nil
}

func (x *Screenshots) GetTotal() uint32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type Screenshot struct {
	Id              string
	Name            string
	TestFile        string
	TestName        string
	UserAgentId     string
	ImagePath       string
	GoldenImagePath string
	Status          ScreenshotStatus
	Diff            *DiffImageResult
	Clip            *Rect
	Annotations     map[string]string
	Error           string
}

func (x *Screenshot) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Screenshot) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Screenshot) GetTestFile() string {
	if x != nil {
		return x.TestFile
	}
	return ""
}

func (x *Screenshot) GetTestName() string {
	if x != nil {
		return x.TestName
	}
	return ""
}

func (x *Screenshot) GetUserAgentId() string {
	if x != nil {
		return x.UserAgentId
	}
	return ""
}

func (x *Screenshot) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

func (x *Screenshot) GetGoldenImagePath() string {
	if x != nil {
		return x.GoldenImagePath
	}
	return ""
}

func (x *Screenshot) GetStatus() ScreenshotStatus {
	if x != nil {
		return x.Status
	}
	return ScreenshotStatus_SCREENSHOT_STATUS_UNSPECIFIED
}

func (x *Screenshot) GetDiff() *DiffImageResult {
	if x != nil {
		return x.Diff
	}
	return nil
}

func (x *Screenshot) GetClip() *Rect {
	if x != nil {
		return x.Clip
	}
	return nil
}

func (x *Screenshot) GetAnnotations() map[string]string {
	if x != nil {
		return x.Annotations
	}
	return nil
}

func (x *Screenshot) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

// DiffImageResult is the pixel comparison of a screenshot with its golden image.
type DiffImageResult struct {
	DiffImagePath string
	ChangedPixels uint64
	TotalPixels   uint64
	DiffRatio     float64
	ActualSize    *Size
	GoldenSize    *Size
	Regions       []*Rect
	ChannelDeltas []float32
	Thumbnail     []byte
	SizeMismatch  bool
	OffsetX       int32
	OffsetY       int32
}

func (x *DiffImageResult) GetDiffImagePath() string {
	if x != nil {
		return x.DiffImagePath
	}
	return ""
}

func (x *DiffImageResult) GetChangedPixels() uint64 {
	if x != nil {
		return x.ChangedPixels
	}
	return 0
}

func (x *DiffImageResult) GetTotalPixels() uint64 {
	if x != nil {
		return x.TotalPixels
	}
	return 0
}

func (x *DiffImageResult) GetDiffRatio() float64 {
	if x != nil {
		return x.DiffRatio
	}
	return 0
}

func (x *DiffImageResult) GetActualSize() *Size {
	if x != nil {
		return x.ActualSize
	}
	return nil
}

func (x *DiffImageResult) GetGoldenSize() *Size {
	if x != nil {
		return x.GoldenSize
	}
	return nil
}

func (x *DiffImageResult) GetRegions() []*Rect {
	if x != nil {
		return x.Regions
	}
	return nil
}

func (x *DiffImageResult) GetChannelDeltas() []float32 {
	if x != nil {
		return x.ChannelDeltas
	}
	return nil
}

func (x *DiffImageResult) GetThumbnail() []byte {
	if x != nil {
		return x.Thumbnail
	}
	return nil
}

func (x *DiffImageResult) GetSizeMismatch() bool {
	if x != nil {
		return x.SizeMismatch
	}
	return false
}

func (x *DiffImageResult) GetOffsetX() int32 {
	if x != nil {
		return x.OffsetX
	}
	return 0
}

func (x *DiffImageResult) GetOffsetY() int32 {
	if x != nil {
		return x.OffsetY
	}
	return 0
}

type Size struct {
	Width  uint32
	Height uint32
}

func (x *Size) GetWidth() uint32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *Size) GetHeight() uint32 {
	if x != nil {
		return x.Height
	}
	return 0
}

type Rect struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

func (x *Rect) GetX() int32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Rect) GetY() int32 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *Rect) GetWidth() uint32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *Rect) GetHeight() uint32 {
	if x != nil {
		return x.Height
	}
	return 0
}

type Approvals struct {
	Items     []*Approval
	UpdatedAt int64
	UpdatedBy *User
}

func (x *Approvals) GetItems() []*Approval {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Approvals) GetUpdatedAt() int64 {
	if x != nil {
		return x.UpdatedAt
	}
	return 0
}

func (x *Approvals) GetUpdatedBy() *User {
	if x != nil {
		return x.UpdatedBy
	}
	return nil
}

type Approval struct {
	ScreenshotId string
	State        ApprovalState
	Reviewer     *User
	ReviewedAt   int64
	Comment      string
	ImageHash    uint64
}

func (x *Approval) GetScreenshotId() string {
	if x != nil {
		return x.ScreenshotId
	}
	return ""
}

func (x *Approval) GetState() ApprovalState {
	if x != nil {
		return x.State
	}
	return ApprovalState_APPROVAL_STATE_UNSPECIFIED
}

func (x *Approval) GetReviewer() *User {
	if x != nil {
		return x.Reviewer
	}
	return nil
}

func (x *Approval) GetReviewedAt() int64 {
	if x != nil {
		return x.ReviewedAt
	}
	return 0
}

func (x *Approval) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

func (x *Approval) GetImageHash() uint64 {
	if x != nil {
		return x.ImageHash
	}
	return 0
}

// GoldenSuite groups the golden images a set of screenshots is compared against.
type GoldenSuite struct {
	Name          string
	GoldenDir     string
	ScreenshotIds []string
	Revision      *GitRevision
	Checksum      uint32
}

func (x *GoldenSuite) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *GoldenSuite) GetGoldenDir() string {
	if x != nil {
		return x.GoldenDir
	}
	return ""
}

func (x *GoldenSuite) GetScreenshotIds() []string {
	if x != nil {
		return x.ScreenshotIds
	}
	return nil
}

func (x *GoldenSuite) GetRevision() *GitRevision {
	if x != nil {
		return x.Revision
	}
	return nil
}

func (x *GoldenSuite) GetChecksum() uint32 {
	if x != nil {
		return x.Checksum
	}
	return 0
}
