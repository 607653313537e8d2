package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"arith/internal/source"
)

// Cursor представляет собой позицию во входной строке
type Cursor struct {
	Src []byte
	Off uint32
	// Limit is the exclusive upper bound for Off; equals len(Src).
	Limit uint32
}

// NewCursor creates a cursor at the start of src.
// Callers must reject inputs longer than math.MaxUint32 beforehand.
func NewCursor(src []byte) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("len input overflow: %w", err))
	}
	return Cursor{
		Src:   src,
		Off:   0,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец входа
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src[c.Off]
	c.Off++
	return b
}

// Advance moves the cursor n bytes forward, stopping at Limit.
func (c *Cursor) Advance(n uint32) {
	c.Off = min(c.Off+n, c.Limit)
}

// Rest returns the unread bytes.
func (c *Cursor) Rest() []byte {
	return c.Src[c.Off:c.Limit]
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Start: uint32(m),
		End:   c.Off,
	}
}

// SkipToEnd moves the cursor past the last byte.
func (c *Cursor) SkipToEnd() {
	c.Off = c.Limit
}
