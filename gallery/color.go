package gallery

import (
	"hash/fnv"

	"github.com/lucasb-eyer/go-colorful"
)

const goldenRatio = 0.618033988749895

// ColorForUser returns a stable avatar colour for a username. Hues are spread
// with the golden ratio so that similar hashes still land far apart.
func ColorForUser(username string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))

	hue := float64(h.Sum32()) * goldenRatio
	hue -= float64(int64(hue))

	return colorful.Hsl(hue*360, 0.85, 0.55).Hex()
}
