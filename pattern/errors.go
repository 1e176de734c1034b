package pattern

import "errors"

// ErrDegenerateZ indicates RouteZ was asked to route a segment with zero
// width or zero height; spec §4.3 requires both to route the Z pattern —
// callers should fall back to RouteL for such segments.
var ErrDegenerateZ = errors.New("pattern: z-route requires non-zero width and height")
