//go:build (windows && !transcode_wide32) || transcode_wide16

package transcode

// Wide is the platform wide character unit. It is 16 bits on Windows.
type Wide = uint16

// WideWidth is the width of Wide.
const WideWidth = Width16
