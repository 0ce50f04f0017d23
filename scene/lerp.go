package scene

// Initial returns the state a mark starts from when it enters the scene.
//
//   - Rect: zero height resting on baseline
//   - Arc: zero sweep (end angle at the start angle)
//   - Path: dash offset equal to the path length, hiding the stroke
//   - Circle: transparent if it has a transition, unchanged otherwise
//   - Label: unchanged
func Initial(m Mark, baseline float64) Mark {
	switch s := m.Shape.(type) {
	case RectShape:
		s.Y = baseline
		s.Height = 0
		m.Shape = s
	case ArcShape:
		s.EndAngle = s.StartAngle
		m.Shape = s
	case PathShape:
		m.DashOffset = s.Length
	case CircleShape:
		if m.Timing.Duration > 0 {
			m.Opacity = 0
		}
	}
	return m
}

// Lerp interpolates between two states of the same mark. t is clamped to
// [0, 1]. The result carries to's identity and data; only the animated
// properties are blended:
//
//   - Rect: x, y, width and height
//   - Arc: end angle only (a sweep, not a shape tween)
//   - Path: dash offset
//   - Circle: position, radius and opacity
//   - Label: opacity
//
// If from and to have different shapes the result jumps to to.
func Lerp(from, to Mark, t float64) Mark {
	if t <= 0 {
		t = 0
	} else if t >= 1 {
		return to
	}

	out := to
	out.Opacity = lerp(from.Opacity, to.Opacity, t)

	switch b := to.Shape.(type) {
	case RectShape:
		if a, ok := from.Shape.(RectShape); ok {
			out.Shape = RectShape{
				X:      lerp(a.X, b.X, t),
				Y:      lerp(a.Y, b.Y, t),
				Width:  lerp(a.Width, b.Width, t),
				Height: lerp(a.Height, b.Height, t),
			}
		}
	case ArcShape:
		if a, ok := from.Shape.(ArcShape); ok {
			b.EndAngle = lerp(a.EndAngle, b.EndAngle, t)
			out.Shape = b
		}
	case PathShape:
		if _, ok := from.Shape.(PathShape); ok {
			out.DashOffset = lerp(from.DashOffset, to.DashOffset, t)
		}
	case CircleShape:
		if a, ok := from.Shape.(CircleShape); ok {
			out.Shape = CircleShape{
				CX: lerp(a.CX, b.CX, t),
				CY: lerp(a.CY, b.CY, t),
				R:  lerp(a.R, b.R, t),
			}
		}
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
