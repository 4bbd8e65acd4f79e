package ftlprof

import "io"

// record is a fixed-order descriptor: it reads and writes its fields through
// the sticky Reader/Writer. Errors are collected by the caller.
type record interface {
	decode(r *Reader)
	encode(w *Writer)
	Size() int
}

// stringSize is the wire size of a length-prefixed string.
func stringSize(s string) int { return 4 + len(s) }

// readRecord decodes v from a stream. When r is not already a *Reader or an
// in-memory reader it gets buffered, and bytes past the record may be consumed.
func readRecord(v record, r io.Reader) (int64, error) {
	rd, err := NewReader(r)
	if err != nil {
		return 0, err
	}
	start := rd.Count()
	v.decode(rd)
	return rd.Count() - start, rd.Err()
}

func writeRecord(v record, w io.Writer) (int64, error) {
	wr, err := NewWriter(w)
	if err != nil {
		return 0, err
	}
	v.encode(wr)
	return wr.Result()
}

// Achievement is one unlocked achievement.
//
// Wire layout: string name, int32 difficulty.
type Achievement struct {
	Name       string
	Difficulty Difficulty
}

var _ Codec = (*Achievement)(nil)

func (a *Achievement) decode(r *Reader) {
	var v Achievement
	var difficulty int32
	r.ReadString(&v.Name)
	r.ReadInt32(&difficulty)
	if r.Err() != nil {
		return
	}
	v.Difficulty = Difficulty(difficulty)
	*a = v
}

func (a *Achievement) encode(w *Writer) {
	w.WriteString(a.Name)
	w.WriteInt32(int32(a.Difficulty))
}

func (a *Achievement) Size() int { return stringSize(a.Name) + 4 }

func (a *Achievement) ReadFrom(r io.Reader) (int64, error) { return readRecord(a, r) }
func (a *Achievement) WriteTo(w io.Writer) (int64, error)  { return writeRecord(a, w) }

func (a *Achievement) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(a) }
func (a *Achievement) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(a, data) }
func (a *Achievement) MarshalTo(buf []byte) (int, error) { return MarshalToGeneric(a, buf) }

// ScoreEntry is one recorded game: a high score or a per-ship best.
//
// Wire layout: string ship name, string ship type, then int32 score, sector,
// victory and difficulty. Strings come first, unlike CrewMember.
type ScoreEntry struct {
	ShipName   string
	ShipType   string
	Score      int32
	Sector     int32
	Victory    Flag
	Difficulty Difficulty
}

var _ Codec = (*ScoreEntry)(nil)

func (s *ScoreEntry) decode(r *Reader) {
	var v ScoreEntry
	var scalars [4]int32
	r.ReadString(&v.ShipName)
	r.ReadString(&v.ShipType)
	r.ReadInt32s(scalars[:])
	if r.Err() != nil {
		return
	}
	v.Score = scalars[0]
	v.Sector = scalars[1]
	v.Victory = Flag(scalars[2])
	v.Difficulty = Difficulty(scalars[3])
	*s = v
}

func (s *ScoreEntry) encode(w *Writer) {
	w.WriteString(s.ShipName)
	w.WriteString(s.ShipType)
	w.WriteInt32s(s.Score, s.Sector, int32(s.Victory), int32(s.Difficulty))
}

func (s *ScoreEntry) Size() int { return stringSize(s.ShipName) + stringSize(s.ShipType) + 4*4 }

func (s *ScoreEntry) ReadFrom(r io.Reader) (int64, error) { return readRecord(s, r) }
func (s *ScoreEntry) WriteTo(w io.Writer) (int64, error)  { return writeRecord(s, w) }

func (s *ScoreEntry) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(s) }
func (s *ScoreEntry) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(s, data) }
func (s *ScoreEntry) MarshalTo(buf []byte) (int, error) { return MarshalToGeneric(s, buf) }

// CrewMember is the best crew member of one category. The category is not
// stored; it is the member's index in Profile.Crew.
//
// Wire layout: int32 score, string name, string race, int32 gender. The
// score precedes the strings.
type CrewMember struct {
	Score  int32
	Name   string
	Race   string
	Gender Gender
}

var _ Codec = (*CrewMember)(nil)

func (c *CrewMember) decode(r *Reader) {
	var v CrewMember
	var gender int32
	r.ReadInt32(&v.Score)
	r.ReadString(&v.Name)
	r.ReadString(&v.Race)
	r.ReadInt32(&gender)
	if r.Err() != nil {
		return
	}
	v.Gender = Gender(gender)
	*c = v
}

func (c *CrewMember) encode(w *Writer) {
	w.WriteInt32(c.Score)
	w.WriteString(c.Name)
	w.WriteString(c.Race)
	w.WriteInt32(int32(c.Gender))
}

func (c *CrewMember) Size() int { return 4 + stringSize(c.Name) + stringSize(c.Race) + 4 }

func (c *CrewMember) ReadFrom(r io.Reader) (int64, error) { return readRecord(c, r) }
func (c *CrewMember) WriteTo(w io.Writer) (int64, error)  { return writeRecord(c, w) }

func (c *CrewMember) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(c) }
func (c *CrewMember) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(c, data) }
func (c *CrewMember) MarshalTo(buf []byte) (int, error) { return MarshalToGeneric(c, buf) }
