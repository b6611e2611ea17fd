// Package widget provides halo's animated progress indicators for Bubble
// Tea programs.
//
// # Components Overview
//
//	Animated  - Generic value-tweening wrapper around a render callback
//	Ring      - Custom ring indicator with determinate and looping modes
//	Circular  - Standard circular indicator preset over the ring painter
//	Linear    - Horizontal bar over the bubbles progress primitive
//
// All widgets follow the same lifecycle: construct with a config struct,
// compose into a parent model, forward FrameMsg values through Update, and
// render with View. SetValue/ClearValue switch between determinate and
// indeterminate display; value changes tween smoothly from wherever the
// widget is currently rendering, never jumping.
//
// # Determinate vs Indeterminate
//
// A nil Value in a config (or a ClearValue call) selects indeterminate
// mode: the widget runs a repeating loop animation until a concrete value
// arrives. A non-nil Value must lie in [0, 100]; constructors panic on
// out-of-range values since that is a programmer error, not runtime input.
//
// # Color Scheme
//
// Defaults are ANSI codes for broad terminal compatibility:
//
//	ColorAccent  (blue)  - Foreground progress
//	ColorTrack   (gray)  - Background track
//	ColorSuccess (green) - Completed state accents
//	ColorError   (red)   - Failure accents
//
// # Ring Usage
//
//	v := 50.0
//	ring := widget.NewRing(widget.RingConfig{Value: &v, Label: "Upload"})
//	cmd := ring.Start()
//	// in Update: ring, cmd = ring.Update(msg)
//	// in View:   ring.View()
package widget
