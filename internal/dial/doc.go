// Package dial holds the state of a rotatable ruler dial and maps its
// rotation to a numeric value.
//
// # Rotation
//
// A Controller keeps two angles: the live rotation shown on screen and the
// rotation committed when the last drag ended. During a drag the live
// rotation is the committed rotation plus the change in pointer angle since
// the drag started, so starting a new drag never makes the dial jump.
//
// # Value
//
// The selected value is never stored. Range.ValueAt derives it from the
// rotation on every read:
//
//	value = Min - (rotation * RulerLines / 360) / 2
//
// Rotation is unbounded unless the controller is built WithClamp, so the
// value may leave [Min, Max] when the user keeps spinning.
package dial
