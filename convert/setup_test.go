package convert_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aalemi-dev/logkit/convert"
	"github.com/aalemi-dev/logkit/logpoint"
)

type card struct{ number string }

type money struct{ cents int }

func (m money) String() string { return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100) }

type nilError struct{}

func (*nilError) Error() string { return "never" }

var _ logpoint.Converter = (*convert.Registry)(nil)

func TestRegistry_Defaults(t *testing.T) {
	t.Parallel()
	r := convert.NewRegistry()
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, r.Convert(nil))
	assert.Equal(t, "boom", r.Convert(errors.New("boom")))
	assert.Equal(t, "12.05", r.Convert(money{cents: 1205}))
	assert.Equal(t, "3 bytes", r.Convert([]byte("abc")))
	assert.Equal(t, "2024-05-01T12:00:00Z", r.Convert(ts))
	assert.Equal(t, 42, r.Convert(42))
	assert.Equal(t, "plain", r.Convert("plain"))
}

func TestRegistry_TypedNilPassesThrough(t *testing.T) {
	t.Parallel()
	var err *nilError
	assert.Equal(t, err, convert.NewRegistry().Convert(err))
}

func TestRegistry_ExactTypeWins(t *testing.T) {
	t.Parallel()
	r := convert.NewRegistry(
		convert.WithType(func(s fmt.Stringer) any { return "stringer" }),
		convert.WithType(func(m money) any { return m.cents }),
	)
	assert.Equal(t, 1205, r.Convert(money{cents: 1205}))
}

func TestRegistry_InterfaceConverter(t *testing.T) {
	t.Parallel()
	r := convert.NewRegistry(
		convert.WithType(func(s fmt.Stringer) any { return "<" + s.String() + ">" }),
	)
	assert.Equal(t, "<0.99>", r.Convert(money{cents: 99}))
}

func TestRegistry_CustomTypeMasks(t *testing.T) {
	t.Parallel()
	r := convert.NewRegistry(
		convert.WithType(func(c card) any { return "****" + c.number[len(c.number)-4:] }),
	)
	assert.Equal(t, "****4242", r.Convert(card{number: "4242424242424242"}))
}

func TestRegistry_WithoutDefaults(t *testing.T) {
	t.Parallel()
	r := convert.NewRegistry(convert.WithoutDefaults())
	err := errors.New("boom")
	assert.Equal(t, err, r.Convert(err))
}
