package constants

// CaptureMode describes how a report's raw input was collected.
type CaptureMode string

const (
	// CaptureFreeform is unstructured note-taking; contractors are carried by
	// name, not id.
	CaptureFreeform CaptureMode = "freeform"
	// CaptureGuided is structured per-section entry capture.
	CaptureGuided CaptureMode = "guided"
)

// CaptureModes holds the allowed values for the capture_mode field.
var CaptureModes = []string{string(CaptureFreeform), string(CaptureGuided)}
