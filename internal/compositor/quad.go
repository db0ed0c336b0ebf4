package compositor

// quadVertices computes the 4-vertex quad (spec.md §4.2 "Quad layout
// (pixel-space)") for a window at (x, y) with extents (w, h) and
// border b. Each vertex is packed as [x, y, u, v] so that
// draw_window's stride-4-floats attribute layout (position at offset
// 0, texcoord at offset 2) can read directly off this buffer.
//
// Border doubling reflects that the named pixmap includes borders on
// both sides (spec.md §4.2).
//
// This function is pure and therefore idempotent by construction
// (spec.md §8 "Quad vertex computation is idempotent"): calling it
// twice with identical inputs produces bit-identical floats, since it
// performs no mutable or time-dependent state.
func quadVertices(x, y int16, w, h, b uint16) [16]float32 {
	fx, fy := float32(x), float32(y)
	fw := fx + float32(w) + 2*float32(b)
	fh := fy + float32(h) + 2*float32(b)

	return [16]float32{
		fx, fy, 0, 0, // top-left
		fw, fy, 1, 0, // top-right
		fx, fh, 0, 1, // bottom-left
		fw, fh, 1, 1, // bottom-right
	}
}

// quadIndices is the shared element buffer content: two triangles
// (0,1,2) and (1,2,3) describing the quad (spec.md §4.2).
var quadIndices = [6]uint32{0, 1, 2, 1, 2, 3}
