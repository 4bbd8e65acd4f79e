package ftlprof

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// wire assembles raw profile bytes independently of Writer.
type wire struct{ bytes.Buffer }

func (b *wire) i32(values ...int32) *wire {
	for _, v := range values {
		_ = binary.Write(&b.Buffer, binary.LittleEndian, v)
	}
	return b
}

func (b *wire) str(s string) *wire {
	b.i32(int32(len(s)))
	b.WriteString(s)
	return b
}

// minimalProfile is the smallest well-formed file: nothing recorded, every
// ship unlocked and five empty crew records.
func minimalProfile(version int32) []byte {
	b := &wire{}
	b.i32(version)
	b.i32(0)                         // achievements
	b.i32(1, 1, 1, 1, 1, 1, 1, 1, 1) // ships
	b.i32(0, 0, 0)                   // reserved
	b.i32(0)                         // high scores
	b.i32(0)                         // ship scores
	b.i32(make([]int32, 10)...)      // statistics
	for range CrewSlots {
		b.i32(0).str("").str("").i32(0)
	}
	return b.Bytes()
}

// sampleProfile exercises every collection with non-trivial content.
func sampleProfile() *Profile {
	return &Profile{
		Version: 4,
		Achievements: []Achievement{
			{Name: "ACH_SECTOR_5", Difficulty: Normal},
			{Name: "ACH_UNLOCK_ALL", Difficulty: Easy},
			{Name: "", Difficulty: Normal},
		},
		Ships: ShipUnlocks{Kestrel: 1, Stealth: 1, Engi: 1, Zoltan: 1},
		HighScores: []ScoreEntry{
			{ShipName: "The Kestrel", ShipType: "PLAYER_SHIP_HARD", Score: 4321, Sector: 8, Victory: 1, Difficulty: Normal},
			{ShipName: "Nesasio", ShipType: "PLAYER_SHIP_STEALTH", Score: 1200, Sector: 4, Victory: 0, Difficulty: Easy},
		},
		ShipScores: []ScoreEntry{
			{ShipName: "The Kestrel", ShipType: "PLAYER_SHIP_HARD", Score: 4321, Sector: 8, Victory: 1, Difficulty: Normal},
		},
		Stats: Statistics{
			BestShips: 31, TotalShips: 412,
			BestBeacons: 80, TotalBeacons: 1033,
			BestScrap: 2650, TotalScrap: 30120,
			BestCrew: 9, TotalCrew: 87,
			Games: 23, Victories: 2,
		},
		Crew: [CrewSlots]CrewMember{
			{Score: 120, Name: "Ellen", Race: "engi", Gender: Female},
			{Score: 54, Name: "Kaz", Race: "mantis", Gender: Male},
			{Score: 800, Name: "Stanley", Race: "human", Gender: Male},
			{Score: 35, Name: "Charlie", Race: "zoltan", Gender: Female},
			{Score: 7, Name: "\xff\xfe raw", Race: "rock", Gender: Male},
		},
	}
}

// failingReader returns its data and then a fixed error.
type failingReader struct {
	data []byte
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

// failingWriter rejects every write.
type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

var errDevice = errors.New("device failure")
