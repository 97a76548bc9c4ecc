// Package tapeheads emulates the picture degradation of analog PAL
// broadcast and PAL VHS tape on a still image.
//
// # Overview
//
// Both effects run the same signal emulation pipeline on a [Frame]:
//   - the frame is scaled to the 720x576 PAL raster
//   - an optional black matte hides what a real display would not show
//   - tape effects shift single rows sideways (head switch noise, glitches)
//   - the picture is split into an approximate luminance band and an
//     approximate chrominance band, each band-limited by resampling it down
//     and back up, and the two are added back together
//   - PAL can add an interlace artifact on top
//
// The band split is not a colorspace transform. Each band is made by
// scaling the red, green and blue white points (76/150/29 for luminance,
// 179/105/226 for chrominance), which weights the bands roughly like luma
// and color difference while keeping white white when they are added.
//
// # Quick Start
//
//	frame, layer := tapeheads.NewFrame(img)
//	if _, err := tapeheads.PAL(frame, layer, tapeheads.DefaultPALOptions()); err != nil {
//	    return err
//	}
//	out := frame.Image()
//
// # Layers
//
// A Frame owns an ordered stack of layers. Every step works the way a layer
// based image editor would: it adds the transient layers it needs directly
// above the layer it was given, merges them down and returns the single
// resulting layer. No transient layer outlives the step that created it,
// on success or failure. [PAL] and [VHS] run all their steps in one
// [Frame.Transaction], so a failed effect leaves the frame untouched.
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel; X increases right, Y increases down.
// Row shifts only move pixels along X.
package tapeheads
