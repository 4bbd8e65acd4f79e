package ftlprof

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWireLayout(t *testing.T) {
	tests := []struct {
		name   string
		record Codec
		wire   []byte
	}{
		{
			name:   "Achievement",
			record: &Achievement{Name: "ACH_PACIFIST", Difficulty: Normal},
			wire:   (&wire{}).str("ACH_PACIFIST").i32(1).Bytes(),
		},
		{
			name:   "ScoreEntry",
			record: &ScoreEntry{ShipName: "Bonnie", ShipType: "PLAYER_SHIP_MANTIS", Score: 999, Sector: 6, Victory: 1, Difficulty: Easy},
			wire:   (&wire{}).str("Bonnie").str("PLAYER_SHIP_MANTIS").i32(999, 6, 1, 0).Bytes(),
		},
		{
			name:   "CrewMember",
			record: &CrewMember{Score: 31, Name: "Jan", Race: "slug", Gender: Male},
			wire:   (&wire{}).i32(31).str("Jan").str("slug").i32(1).Bytes(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.record.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, tt.wire, got)
			assert.Equal(t, len(tt.wire), tt.record.Size())

			var buf bytes.Buffer
			n, err := tt.record.WriteTo(&buf)
			require.NoError(t, err)
			assert.EqualValues(t, len(tt.wire), n)
			assert.Equal(t, tt.wire, buf.Bytes())
		})
	}
}

func TestRecordDecode(t *testing.T) {
	t.Run("ScoreEntry", func(t *testing.T) {
		var s ScoreEntry
		n, err := s.ReadFrom(bytes.NewReader((&wire{}).str("A").str("B").i32(10, 2, 0, 1).Bytes()))
		require.NoError(t, err)
		assert.EqualValues(t, 4+1+4+1+16, n)
		assert.Equal(t, ScoreEntry{ShipName: "A", ShipType: "B", Score: 10, Sector: 2, Victory: 0, Difficulty: Normal}, s)
	})

	t.Run("CrewMemberScoreComesFirst", func(t *testing.T) {
		var c CrewMember
		require.NoError(t, c.UnmarshalBinary((&wire{}).i32(5).str("Ro").str("engi").i32(0).Bytes()))
		assert.Equal(t, CrewMember{Score: 5, Name: "Ro", Race: "engi", Gender: Female}, c)
	})

	t.Run("UnknownEnumValuesSurvive", func(t *testing.T) {
		var a Achievement
		require.NoError(t, a.UnmarshalBinary((&wire{}).str("X").i32(7).Bytes()))
		assert.Equal(t, Difficulty(7), a.Difficulty)
		assert.Equal(t, "unknown(7)", a.Difficulty.String())

		out, err := a.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, (&wire{}).str("X").i32(7).Bytes(), out)
	})
}

func TestRecordAllOrNothing(t *testing.T) {
	full := (&wire{}).i32(5).str("Ro").str("engi").i32(1).Bytes()
	original := CrewMember{Score: -1, Name: "keep", Race: "keep", Gender: Male}

	for cut := 0; cut < len(full); cut++ {
		c := original
		_, err := c.ReadFrom(bytes.NewReader(full[:cut]))
		require.ErrorIs(t, err, ErrTruncatedData, "cut at %d", cut)
		assert.Equal(t, original, c, "cut at %d", cut)
	}
}

func TestRecordSharesReaderPosition(t *testing.T) {
	data := (&wire{}).str("first").i32(0).str("second").i32(1).Bytes()
	r, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)

	var a, b Achievement
	_, err = a.ReadFrom(r)
	require.NoError(t, err)
	_, err = b.ReadFrom(r)
	require.NoError(t, err)

	assert.Equal(t, "first", a.Name)
	assert.Equal(t, "second", b.Name)
	assert.Equal(t, Normal, b.Difficulty)
}

func TestMarshalTo(t *testing.T) {
	a := &Achievement{Name: "ACH", Difficulty: Easy}

	buf := make([]byte, a.Size())
	n, err := a.MarshalTo(buf)
	require.NoError(t, err)
	assert.Equal(t, a.Size(), n)

	_, err = a.MarshalTo(buf[:a.Size()-1])
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestUnmarshalTrailingData(t *testing.T) {
	data := (&wire{}).str("A").i32(1).Bytes()

	var a Achievement
	require.NoError(t, a.UnmarshalBinary(append(append([]byte(nil), data...), 0, 0)))

	err := a.UnmarshalBinary(append(append([]byte(nil), data...), 0, 9))
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestList(t *testing.T) {
	t.Run("CountPrefix", func(t *testing.T) {
		l := NewList[Achievement]([]Achievement{{Name: "a"}, {Name: "b", Difficulty: Normal}})
		out, err := l.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, (&wire{}).i32(2).str("a").i32(0).str("b").i32(1).Bytes(), out)
		assert.Equal(t, len(out), l.Size())
	})

	t.Run("CountMatchesItems", func(t *testing.T) {
		var l ScoreList
		data := (&wire{}).i32(2).
			str("x").str("y").i32(1, 2, 3, 4).
			str("z").str("w").i32(5, 6, 7, 8).Bytes()
		require.NoError(t, l.UnmarshalBinary(data))
		require.Equal(t, 2, l.Len())
		assert.Equal(t, "z", l.Items[1].ShipName)
		assert.Equal(t, Flag(7), l.Items[1].Victory)
	})

	t.Run("FewerItemsThanCount", func(t *testing.T) {
		var l AchievementList
		err := l.UnmarshalBinary((&wire{}).i32(3).str("a").i32(0).Bytes())
		assert.ErrorIs(t, err, ErrTruncatedData)
		assert.Nil(t, l.Items)
	})

	t.Run("NegativeCount", func(t *testing.T) {
		var l AchievementList
		err := l.UnmarshalBinary((&wire{}).i32(-1).Bytes())
		assert.ErrorIs(t, err, ErrNegativeLength)
	})

	t.Run("HugeCountDoesNotPreallocate", func(t *testing.T) {
		var l AchievementList
		err := l.UnmarshalBinary((&wire{}).i32(1 << 30).Bytes())
		assert.ErrorIs(t, err, ErrTruncatedData)
	})
}

func TestFixedGroups(t *testing.T) {
	t.Run("Sizes", func(t *testing.T) {
		assert.Equal(t, 9*4, (&Fixed[ShipUnlocks]{}).Size())
		assert.Equal(t, 12*4, (&Fixed[shipBlock]{}).Size())
		assert.Equal(t, 10*4, (&Fixed[Statistics]{}).Size())
	})

	t.Run("StatisticsOrder", func(t *testing.T) {
		g := Fixed[Statistics]{}
		require.NoError(t, g.UnmarshalBinary((&wire{}).i32(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).Bytes()))
		assert.Equal(t, Statistics{
			BestShips: 1, TotalShips: 2,
			BestBeacons: 3, TotalBeacons: 4,
			BestScrap: 5, TotalScrap: 6,
			BestCrew: 7, TotalCrew: 8,
			Games: 9, Victories: 10,
		}, g.Payload)
	})

	t.Run("TruncatedGroupLeavesPayload", func(t *testing.T) {
		g := Fixed[ShipUnlocks]{Payload: ShipUnlocks{Crystal: 5}}
		_, err := g.ReadFrom(bytes.NewReader((&wire{}).i32(1, 1, 1).Bytes()))
		assert.ErrorIs(t, err, ErrTruncatedData)
		assert.Equal(t, ShipUnlocks{Crystal: 5}, g.Payload)

		err = g.UnmarshalBinary(make([]byte, 8))
		assert.ErrorIs(t, err, ErrTruncatedData)
	})

	t.Run("ShipBlockWritesReservedZeros", func(t *testing.T) {
		g := Fixed[shipBlock]{Payload: shipBlock{Unlocks: ShipUnlocks{Kestrel: 1, Crystal: 1}}}
		out, err := g.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, (&wire{}).i32(1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0).Bytes(), out)
	})
}

func TestShipUnlocks(t *testing.T) {
	u := ShipUnlocks{Mantis: 1, Crystal: 2}
	assert.True(t, u.Unlocked(Mantis))
	assert.True(t, u.Unlocked(Crystal))
	assert.False(t, u.Unlocked(Kestrel))
	assert.False(t, u.Unlocked(Ship(42)))
	assert.Equal(t, "Federation", Federation.String())
	assert.Equal(t, Flag(1), FlagOf(true))
	assert.Equal(t, "skills", CrewSkills.String())
}
