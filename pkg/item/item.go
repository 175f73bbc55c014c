package item

import (
	"github.com/dchest/siphash"
	"go.uber.org/atomic"
)

const (
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// Item is a sample element type with a stable identity and a mutable
// access counter, used to exercise member access through list cursors.
type Item struct {
	Name        string
	AccessCount *atomic.Int64
}

func New(name string) *Item {
	return &Item{
		Name:        name,
		AccessCount: atomic.NewInt64(0),
	}
}

func (it *Item) ID() uint64 {
	return siphash.Hash(sipHashKey1, sipHashKey2, []byte(it.Name))
}
