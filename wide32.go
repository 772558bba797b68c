//go:build (!windows || transcode_wide32) && !transcode_wide16

package transcode

// Wide is the platform wide character unit. It is 32 bits outside Windows.
type Wide = uint32

// WideWidth is the width of Wide.
const WideWidth = Width32
