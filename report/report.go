// Package report renders a decoded profile for people: a plain text dump and
// a YAML document carrying the same data.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/oy3o/ftlprof"
)

// Render writes the text dump of p to w.
func Render(w io.Writer, p *ftlprof.Profile) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "version: %d\n", p.Version)

	fmt.Fprintln(bw, "ships:")
	for s := ftlprof.Kestrel; s < ftlprof.ShipCount; s++ {
		fmt.Fprintf(bw, " - %s: %s\n", s, lockState(p.Ships.Unlocked(s)))
	}

	fmt.Fprintln(bw, "achievements:")
	for _, a := range p.Achievements {
		fmt.Fprintf(bw, " - %s [%s]\n", a.Name, a.Difficulty)
	}

	fmt.Fprintln(bw, "high score:")
	renderScores(bw, p.HighScores)
	fmt.Fprintln(bw, "ship score:")
	renderScores(bw, p.ShipScores)

	st := &p.Stats
	fmt.Fprintln(bw, "stats:")
	fmt.Fprintf(bw, " - best ships defeated: %d\n", st.BestShips)
	fmt.Fprintf(bw, " - best number of beacons explored: %d\n", st.BestBeacons)
	fmt.Fprintf(bw, " - best scrap collected: %d\n", st.BestScrap)
	fmt.Fprintf(bw, " - best number of crew hired: %d\n", st.BestCrew)
	fmt.Fprintf(bw, " - total ships defeated: %d\n", st.TotalShips)
	fmt.Fprintf(bw, " - total number of beacons explored: %d\n", st.TotalBeacons)
	fmt.Fprintf(bw, " - total scrap collected: %d\n", st.TotalScrap)
	fmt.Fprintf(bw, " - total number of crew hired: %d\n", st.TotalCrew)

	fmt.Fprintln(bw, "crew:")
	for i, c := range p.Crew {
		fmt.Fprintf(bw, " - best %s: %s %s named %s with score of %d\n",
			ftlprof.CrewCategory(i), c.Gender, c.Race, c.Name, c.Score)
	}

	fmt.Fprintf(bw, "total number of games played: %d\n", st.Games)
	fmt.Fprintf(bw, "total number of victories: %d\n", st.Victories)

	return bw.Flush()
}

func renderScores(w io.Writer, scores []ftlprof.ScoreEntry) {
	for _, s := range scores {
		victory := ""
		if s.Victory.Set() {
			victory = " [victory]"
		}
		fmt.Fprintf(w, " - ship: %s [%s]\n", s.ShipName, s.ShipType)
		fmt.Fprintf(w, " - score: %d in sector %d on %s%s\n", s.Score, s.Sector, s.Difficulty, victory)
	}
}

func lockState(unlocked bool) string {
	if unlocked {
		return "unlocked"
	}
	return "locked"
}
