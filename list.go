package ftlprof

import "io"

// maxPrealloc caps the capacity reserved from a decoded element count. A
// corrupt count then fails on the missing records instead of on allocation.
const maxPrealloc = 256

// List is the codec for a count-prefixed collection: an int32 element count
// followed by exactly that many records.
type List[T any, P interface {
	*T
	record
}] struct {
	Items []T
}

// AchievementList, ScoreList are the collections stored in a profile.
type (
	AchievementList = List[Achievement, *Achievement]
	ScoreList       = List[ScoreEntry, *ScoreEntry]
)

var (
	_ Codec = (*AchievementList)(nil)
	_ Codec = (*ScoreList)(nil)
)

// NewList wraps items for encoding.
func NewList[T any, P interface {
	*T
	record
}](items []T) *List[T, P] {
	return &List[T, P]{Items: items}
}

func (l *List[T, P]) Len() int { return len(l.Items) }

func (l *List[T, P]) decode(r *Reader) {
	var count int
	r.ReadLength(&count)
	if r.Err() != nil {
		return
	}

	items := make([]T, 0, min(count, maxPrealloc))
	for range count {
		var item T
		P(&item).decode(r)
		if r.Err() != nil {
			return
		}
		items = append(items, item)
	}
	l.Items = items
}

func (l *List[T, P]) encode(w *Writer) {
	w.WriteLength(len(l.Items))
	for i := range l.Items {
		P(&l.Items[i]).encode(w)
	}
}

// Size is the count field plus every item.
func (l *List[T, P]) Size() int {
	total := 4
	for i := range l.Items {
		total += P(&l.Items[i]).Size()
	}
	return total
}

func (l *List[T, P]) ReadFrom(r io.Reader) (int64, error) { return readRecord(l, r) }
func (l *List[T, P]) WriteTo(w io.Writer) (int64, error)  { return writeRecord(l, w) }

func (l *List[T, P]) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(l) }
func (l *List[T, P]) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(l, data) }
func (l *List[T, P]) MarshalTo(buf []byte) (int, error) { return MarshalToGeneric(l, buf) }
