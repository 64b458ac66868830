package reportv1

import (
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// DeviceType is the device type of a browser profile.
type DeviceType int32

const (
	DeviceType_DEVICE_TYPE_UNSPECIFIED DeviceType = 0
	DeviceType_DEVICE_TYPE_DESKTOP     DeviceType = 1
	DeviceType_DEVICE_TYPE_MOBILE      DeviceType = 2
	DeviceType_DEVICE_TYPE_TABLET      DeviceType = 3
)

// Enum value maps for DeviceType.
var (
	DeviceType_name = map[int32]string{
		0: "DEVICE_TYPE_UNSPECIFIED",
		1: "DEVICE_TYPE_DESKTOP",
		2: "DEVICE_TYPE_MOBILE",
		3: "DEVICE_TYPE_TABLET",
	}
	DeviceType_value = map[string]int32{
		"DEVICE_TYPE_UNSPECIFIED": 0,
		"DEVICE_TYPE_DESKTOP":     1,
		"DEVICE_TYPE_MOBILE":      2,
		"DEVICE_TYPE_TABLET":      3,
	}
)

func (x DeviceType) Enum() *DeviceType {
	p := new(DeviceType)
	*p = x
	return p
}

// String returns the value name, or the number for values outside the schema.
func (x DeviceType) String() string {
	if s, ok := DeviceType_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

// Known reports whether x is declared in the schema.
func (x DeviceType) Known() bool {
	_, ok := DeviceType_name[int32(x)]
	return ok
}

func (x DeviceType) Descriptor() protoreflect.EnumDescriptor {
	return file.Enums().ByName("DeviceType")
}

// ScreenshotStatus is the outcome of comparing one screenshot against its golden image.
type ScreenshotStatus int32

const (
	ScreenshotStatus_SCREENSHOT_STATUS_UNSPECIFIED ScreenshotStatus = 0
	ScreenshotStatus_SCREENSHOT_STATUS_UNCHANGED   ScreenshotStatus = 1
	ScreenshotStatus_SCREENSHOT_STATUS_CHANGED     ScreenshotStatus = 2
	ScreenshotStatus_SCREENSHOT_STATUS_ADDED       ScreenshotStatus = 3
	ScreenshotStatus_SCREENSHOT_STATUS_REMOVED     ScreenshotStatus = 4
	ScreenshotStatus_SCREENSHOT_STATUS_FAILED      ScreenshotStatus = 5
)

// Enum value maps for ScreenshotStatus.
var (
	ScreenshotStatus_name = map[int32]string{
		0: "SCREENSHOT_STATUS_UNSPECIFIED",
		1: "SCREENSHOT_STATUS_UNCHANGED",
		2: "SCREENSHOT_STATUS_CHANGED",
		3: "SCREENSHOT_STATUS_ADDED",
		4: "SCREENSHOT_STATUS_REMOVED",
		5: "SCREENSHOT_STATUS_FAILED",
	}
	ScreenshotStatus_value = map[string]int32{
		"SCREENSHOT_STATUS_UNSPECIFIED": 0,
		"SCREENSHOT_STATUS_UNCHANGED":   1,
		"SCREENSHOT_STATUS_CHANGED":     2,
		"SCREENSHOT_STATUS_ADDED":       3,
		"SCREENSHOT_STATUS_REMOVED":     4,
		"SCREENSHOT_STATUS_FAILED":      5,
	}
)

func (x ScreenshotStatus) Enum() *ScreenshotStatus {
	p := new(ScreenshotStatus)
	*p = x
	return p
}

// String returns the value name, or the number for values outside the schema.
func (x ScreenshotStatus) String() string {
	if s, ok := ScreenshotStatus_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

// Known reports whether x is declared in the schema.
func (x ScreenshotStatus) Known() bool {
	_, ok := ScreenshotStatus_name[int32(x)]
	return ok
}

func (x ScreenshotStatus) Descriptor() protoreflect.EnumDescriptor {
	return file.Enums().ByName("ScreenshotStatus")
}

// ApprovalState is the reviewer decision on a changed screenshot.
type ApprovalState int32

const (
	ApprovalState_APPROVAL_STATE_UNSPECIFIED ApprovalState = 0
	ApprovalState_APPROVAL_STATE_APPROVED    ApprovalState = 1
	ApprovalState_APPROVAL_STATE_REJECTED    ApprovalState = 2
)

// Enum value maps for ApprovalState.
var (
	ApprovalState_name = map[int32]string{
		0: "APPROVAL_STATE_UNSPECIFIED",
		1: "APPROVAL_STATE_APPROVED",
		2: "APPROVAL_STATE_REJECTED",
	}
	ApprovalState_value = map[string]int32{
		"APPROVAL_STATE_UNSPECIFIED": 0,
		"APPROVAL_STATE_APPROVED":    1,
		"APPROVAL_STATE_REJECTED":    2,
	}
)

func (x ApprovalState) Enum() *ApprovalState {
	p := new(ApprovalState)
	*p = x
	return p
}

// String returns the value name, or the number for values outside the schema.
func (x ApprovalState) String() string {
	if s, ok := ApprovalState_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

// Known reports whether x is declared in the schema.
func (x ApprovalState) Known() bool {
	_, ok := ApprovalState_name[int32(x)]
	return ok
}

func (x ApprovalState) Descriptor() protoreflect.EnumDescriptor {
	return file.Enums().ByName("ApprovalState")
}
