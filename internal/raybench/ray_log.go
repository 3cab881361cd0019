package raybench

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

type Category uint8

const (
	Hit    Category = iota // ray hit the sphere in front of the origin
	Miss                   // ray missed the sphere, shaded as sky
	Behind                 // ray line meets the sphere but the nearer root is t <= 0
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Behind:
		return "behind"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// classifyRay names what RayColor does with r.
func classifyRay(r Ray) Category {
	t := DefaultSphere.Hit(r)
	switch {
	case t > 0:
		return Hit
	case t == -1:
		return Miss
	}
	return Behind
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[Category]int
}

var cache = &RayLogCache{
	rays: make(map[Category]int),
}

func logRay(r Ray) {
	c := classifyRay(r)
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[c]++
}

// logImageRays classifies every camera ray of a w x h image.
// Only used in debug mode; it runs outside the timed passes.
func logImageRays(cam Camera, vp Viewport) {
	for j := 0; j < vp.Height; j++ {
		for i := 0; i < vp.Width; i++ {
			u, v := vp.UV(i, j)
			logRay(cam.GetRay(u, v))
		}
	}
}

func raysStats(w io.Writer) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	keys := make([]Category, 0, len(cache.rays))
	for k := range cache.rays {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Fprintf(w, "Ray type %s: %d rays\n", k, cache.rays[k])
	}
}
