package ftlprof

import (
	"fmt"
	"io"
)

// ProfileVersion is the version written by Encode, whatever version was read.
const ProfileVersion int32 = 4

// Profile is the decoded content of a profile save (prof.sav).
//
// Wire layout, all integers little-endian int32:
//
//	version
//	achievement count, then {string name, difficulty} per achievement
//	9 ship unlock flags
//	3 reserved slots (skipped on read, written as zero)
//	high score count, then ScoreEntry records
//	ship score count, then ScoreEntry records
//	10 statistics counters
//	5 CrewMember records, one per CrewCategory
type Profile struct {
	// Version is the value found in the decoded file. It is informational;
	// encoding always writes ProfileVersion.
	Version int32

	Achievements []Achievement
	Ships        ShipUnlocks
	HighScores   []ScoreEntry // overall best games
	ShipScores   []ScoreEntry // best game per ship
	Stats        Statistics
	Crew         [CrewSlots]CrewMember // indexed by CrewCategory
}

var _ Codec = (*Profile)(nil)

// Decode reads one complete profile from r. It never returns a partially
// filled Profile: on any error the result is nil. r is not closed, and when
// it is not an in-memory reader it is buffered, so bytes after the profile
// may be consumed.
func Decode(r io.Reader) (*Profile, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	p := new(Profile)
	p.decode(rd)
	if err := rd.Err(); err != nil {
		return nil, fmt.Errorf("decode profile at offset %d: %w", rd.Count(), err)
	}
	return p, nil
}

// Encode writes p to w and flushes any buffering it added. w is not closed.
func Encode(w io.Writer, p *Profile) error {
	wr, err := NewWriter(w)
	if err != nil {
		return err
	}
	p.encode(wr)
	if n, err := wr.Result(); err != nil {
		return fmt.Errorf("encode profile at offset %d: %w", n, err)
	}
	return nil
}

// decode fills p in file order. Every step runs against the same sticky
// Reader, so the first failure makes the rest no-ops; the caller discards p
// when rd.Err() is set.
func (p *Profile) decode(r *Reader) {
	r.ReadInt32(&p.Version)

	var achievements AchievementList
	achievements.decode(r)
	p.Achievements = achievements.Items

	ships := Fixed[ShipUnlocks]{}
	r.ReadTo(&ships)
	p.Ships = ships.Payload
	r.Skip(4 * ReservedShipSlots)

	var highScores, shipScores ScoreList
	highScores.decode(r)
	shipScores.decode(r)
	p.HighScores = highScores.Items
	p.ShipScores = shipScores.Items

	stats := Fixed[Statistics]{}
	r.ReadTo(&stats)
	p.Stats = stats.Payload

	for i := range p.Crew {
		p.Crew[i].decode(r)
	}
}

// encode mirrors decode with two deliberate differences: the version is
// always ProfileVersion, and the reserved ship slots are written as zeros
// in the same group as the flags.
func (p *Profile) encode(w *Writer) {
	w.WriteInt32(ProfileVersion)

	NewList[Achievement](p.Achievements).encode(w)

	w.WriteFrom(&Fixed[shipBlock]{Payload: shipBlock{Unlocks: p.Ships}})

	NewList[ScoreEntry](p.HighScores).encode(w)
	NewList[ScoreEntry](p.ShipScores).encode(w)

	w.WriteFrom(&Fixed[Statistics]{Payload: p.Stats})

	for i := range p.Crew {
		p.Crew[i].encode(w)
	}
}

// Size returns the exact number of bytes Encode writes for p.
func (p *Profile) Size() int {
	size := 4 // version
	size += NewList[Achievement](p.Achievements).Size()
	size += (&Fixed[shipBlock]{}).Size()
	size += NewList[ScoreEntry](p.HighScores).Size()
	size += NewList[ScoreEntry](p.ShipScores).Size()
	size += (&Fixed[Statistics]{}).Size()
	for i := range p.Crew {
		size += p.Crew[i].Size()
	}
	return size
}

// ReadFrom implements io.ReaderFrom. p is only replaced when the whole
// profile decoded.
func (p *Profile) ReadFrom(r io.Reader) (int64, error) {
	var decoded Profile
	n, err := readRecord(&decoded, r)
	if err != nil {
		return n, err
	}
	*p = decoded
	return n, nil
}

func (p *Profile) WriteTo(w io.Writer) (int64, error) { return writeRecord(p, w) }

func (p *Profile) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(p) }
func (p *Profile) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(p, data) }
func (p *Profile) MarshalTo(buf []byte) (int, error) { return MarshalToGeneric(p, buf) }
