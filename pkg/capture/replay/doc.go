// Package replay provides capture-side collaborators that run without camera
// hardware. Backend replays detections from a text script, Permissions
// answers access requests from configuration and Lifecycle delivers app
// foreground notifications on demand.
//
// A script has one frame per line. A frame lists detections separated by
// ";" and each detection is a symbology name followed by the code:
//
//	EAN13 0012345678905
//	QR https://example.com; EAN8 96385074
//	# comments and blank lines: a blank line is a frame without detections
package replay
