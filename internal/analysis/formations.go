package analysis

import "github.com/san-kum/lifelab/internal/life"

// Formation names recognized by the post-hoc scan on stable boards.
const (
	FormationBlock   = "Block"
	FormationBlinker = "Blinker"
)

// identifyFormations scans a settled board for recognizable formations:
// 2x2 blocks and horizontal blinker rows with dead rows directly above and
// below. The scan stays one cell inside the border so the blinker's
// orthogonal checks never leave the board.
func identifyFormations(g *life.Grid) map[string]int {
	formations := make(map[string]int)
	w, h := g.Dimensions()

	for y := 1; y < h-2; y++ {
		for x := 1; x < w-2; x++ {
			if g.Get(x, y) && g.Get(x+1, y) &&
				g.Get(x, y+1) && g.Get(x+1, y+1) {
				formations[FormationBlock]++
				continue
			}

			if g.Get(x, y) && g.Get(x+1, y) && g.Get(x+2, y) &&
				!g.Get(x, y-1) && !g.Get(x+1, y-1) && !g.Get(x+2, y-1) &&
				!g.Get(x, y+1) && !g.Get(x+1, y+1) && !g.Get(x+2, y+1) {
				formations[FormationBlinker]++
				continue
			}
		}
	}

	return formations
}
