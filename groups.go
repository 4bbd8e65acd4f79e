package ftlprof

import "strconv"

// Difficulty is the difficulty tier an achievement or score was earned on.
type Difficulty int32

const (
	Easy Difficulty = iota
	Normal
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	}
	return "unknown(" + strconv.Itoa(int(d)) + ")"
}

// Gender of a crew member.
type Gender int32

const (
	Female Gender = iota
	Male
)

func (g Gender) String() string {
	switch g {
	case Female:
		return "female"
	case Male:
		return "male"
	}
	return "unknown(" + strconv.Itoa(int(g)) + ")"
}

// Flag is a boolean stored as a 4-byte integer. The raw value is kept so a
// file survives a decode/encode pass unchanged even if it holds something
// other than 0 or 1.
type Flag int32

// Set reports whether the flag is non-zero.
func (f Flag) Set() bool { return f != 0 }

// FlagOf converts a bool into its wire form.
func FlagOf(b bool) Flag {
	if b {
		return 1
	}
	return 0
}

// Ship names one of the nine playable ships.
type Ship int

const (
	Kestrel Ship = iota
	Stealth
	Mantis
	Engi
	Federation
	Slug
	Rock
	Zoltan
	Crystal

	ShipCount = 9
)

var shipNames = [ShipCount]string{"Kestrel", "Stealth", "Mantis", "Engi", "Federation", "Slug", "Rock", "Zoltan", "Crystal"}

func (s Ship) String() string {
	if s < 0 || int(s) >= ShipCount {
		return "Ship(" + strconv.Itoa(int(s)) + ")"
	}
	return shipNames[s]
}

// ShipUnlocks holds one unlock flag per ship, in file order.
type ShipUnlocks struct {
	Kestrel    Flag
	Stealth    Flag
	Mantis     Flag
	Engi       Flag
	Federation Flag
	Slug       Flag
	Rock       Flag
	Zoltan     Flag
	Crystal    Flag
}

// Unlocked reports the flag of ship s. Ships outside the known nine are locked.
func (u *ShipUnlocks) Unlocked(s Ship) bool {
	switch s {
	case Kestrel:
		return u.Kestrel.Set()
	case Stealth:
		return u.Stealth.Set()
	case Mantis:
		return u.Mantis.Set()
	case Engi:
		return u.Engi.Set()
	case Federation:
		return u.Federation.Set()
	case Slug:
		return u.Slug.Set()
	case Rock:
		return u.Rock.Set()
	case Zoltan:
		return u.Zoltan.Set()
	case Crystal:
		return u.Crystal.Set()
	}
	return false
}

// ReservedShipSlots is the number of 4-byte slots after the ship flags that
// the game keeps for ships it never shipped. They are skipped on read and
// always written as zero; the file is not valid without them.
const ReservedShipSlots = 3

// shipBlock is the ship section as it is written: the flags followed by the
// zeroed reserved slots, emitted as one 12-integer group.
type shipBlock struct {
	Unlocks  ShipUnlocks
	Reserved [ReservedShipSlots]int32
}

// Statistics are the lifetime counters, in file order.
type Statistics struct {
	BestShips    int32 // most ships defeated in one game
	TotalShips   int32
	BestBeacons  int32 // most beacons explored in one game
	TotalBeacons int32
	BestScrap    int32 // most scrap collected in one game
	TotalScrap   int32
	BestCrew     int32 // most crew hired in one game
	TotalCrew    int32
	Games        int32
	Victories    int32
}

// CrewCategory is the meaning of a position in Profile.Crew.
type CrewCategory int

const (
	CrewRepair CrewCategory = iota
	CrewCombat
	CrewPilot
	CrewJumps
	CrewSkills

	CrewSlots = 5
)

var crewCategoryNames = [CrewSlots]string{"repair", "combat", "pilot", "jumps", "skills"}

func (c CrewCategory) String() string {
	if c < 0 || int(c) >= CrewSlots {
		return "CrewCategory(" + strconv.Itoa(int(c)) + ")"
	}
	return crewCategoryNames[c]
}
