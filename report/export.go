package report

import (
	"io"

	"github.com/oy3o/ftlprof"
	"gopkg.in/yaml.v3"
)

// document is the YAML shape of a profile. Enum fields are rendered through
// their String methods so the output reads without a legend.
type document struct {
	Version      int32           `yaml:"version"`
	Ships        []ship          `yaml:"ships"`
	Achievements []achievement   `yaml:"achievements"`
	HighScores   []score         `yaml:"high_scores"`
	ShipScores   []score         `yaml:"ship_scores"`
	Stats        stats           `yaml:"stats"`
	Crew         map[string]crew `yaml:"crew"`
}

type ship struct {
	Name     string `yaml:"name"`
	Unlocked bool   `yaml:"unlocked"`
}

type achievement struct {
	Name       string `yaml:"name"`
	Difficulty string `yaml:"difficulty"`
}

type score struct {
	ShipName   string `yaml:"ship_name"`
	ShipType   string `yaml:"ship_type"`
	Score      int32  `yaml:"score"`
	Sector     int32  `yaml:"sector"`
	Victory    bool   `yaml:"victory"`
	Difficulty string `yaml:"difficulty"`
}

type stats struct {
	BestShips    int32 `yaml:"best_ships"`
	TotalShips   int32 `yaml:"total_ships"`
	BestBeacons  int32 `yaml:"best_beacons"`
	TotalBeacons int32 `yaml:"total_beacons"`
	BestScrap    int32 `yaml:"best_scrap"`
	TotalScrap   int32 `yaml:"total_scrap"`
	BestCrew     int32 `yaml:"best_crew"`
	TotalCrew    int32 `yaml:"total_crew"`
	Games        int32 `yaml:"games"`
	Victories    int32 `yaml:"victories"`
}

type crew struct {
	Name   string `yaml:"name"`
	Race   string `yaml:"race"`
	Gender string `yaml:"gender"`
	Score  int32  `yaml:"score"`
}

// Export writes p to w as a YAML document. Crew bests are keyed by category.
func Export(w io.Writer, p *ftlprof.Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(p)); err != nil {
		return err
	}
	return enc.Close()
}

func newDocument(p *ftlprof.Profile) *document {
	doc := &document{
		Version:      p.Version,
		Ships:        make([]ship, 0, ftlprof.ShipCount),
		Achievements: make([]achievement, 0, len(p.Achievements)),
		HighScores:   scores(p.HighScores),
		ShipScores:   scores(p.ShipScores),
		Stats:        stats(p.Stats),
		Crew:         make(map[string]crew, ftlprof.CrewSlots),
	}
	for s := ftlprof.Kestrel; s < ftlprof.ShipCount; s++ {
		doc.Ships = append(doc.Ships, ship{Name: s.String(), Unlocked: p.Ships.Unlocked(s)})
	}
	for _, a := range p.Achievements {
		doc.Achievements = append(doc.Achievements, achievement{Name: a.Name, Difficulty: a.Difficulty.String()})
	}
	for i, c := range p.Crew {
		doc.Crew[ftlprof.CrewCategory(i).String()] = crew{
			Name:   c.Name,
			Race:   c.Race,
			Gender: c.Gender.String(),
			Score:  c.Score,
		}
	}
	return doc
}

func scores(in []ftlprof.ScoreEntry) []score {
	out := make([]score, 0, len(in))
	for _, s := range in {
		out = append(out, score{
			ShipName:   s.ShipName,
			ShipType:   s.ShipType,
			Score:      s.Score,
			Sector:     s.Sector,
			Victory:    s.Victory.Set(),
			Difficulty: s.Difficulty.String(),
		})
	}
	return out
}
