package discovery

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/logkit/logpoint"
)

type ledger struct{}

func (ledger) Balance(ctx context.Context, account string) (int64, error) { return 0, nil }

func (*ledger) Transfer(from, to string, amount int64, cause error) error { return nil }

type store interface {
	Get(key string) ([]byte, error)
}

func archive(ctx context.Context, ids ...int) {}

func TestFromFunc(t *testing.T) {
	t.Parallel()
	m, err := FromFunc("archive", archive, ParamNames("ctx", "ids"))
	require.NoError(t, err)

	require.Len(t, m.Params, 2)
	assert.True(t, m.Params[0].Excluded)
	assert.Equal(t, "ids", m.Params[1].Name)
	assert.Equal(t, reflect.TypeOf([]int(nil)), m.Params[1].Type)
	assert.Empty(t, m.Results)

	require.Len(t, m.Scopes, 1)
	assert.Equal(t, logpoint.PackageScope, m.Scopes[0].Kind)
	assert.Equal(t, "github.com/aalemi-dev/logkit/discovery", m.Scopes[0].Name)

	plan := logpoint.Build(m)
	assert.Equal(t, "archive {}", plan.Message())
	assert.Equal(t, "github.com/aalemi-dev/logkit/discovery", plan.Logger())
}

func TestFromFunc_NotAFunction(t *testing.T) {
	t.Parallel()
	_, err := FromFunc("x", 42)
	assert.ErrorIs(t, err, ErrNotFunc)
}

func TestFromFunc_KeepContextAndExclude(t *testing.T) {
	t.Parallel()
	m, err := FromFunc("archive", archive, KeepContext(), Exclude("arg1"))
	require.NoError(t, err)
	assert.False(t, m.Params[0].Excluded)
	assert.True(t, m.Params[1].Excluded)
	assert.Equal(t, "arg0", m.Params[0].Name)
}

func TestFromMethod_ValueReceiver(t *testing.T) {
	t.Parallel()
	m, err := FromMethod(reflect.TypeOf(ledger{}), "Balance", ParamNames("ctx", "account"))
	require.NoError(t, err)

	require.Len(t, m.Params, 2)
	assert.Equal(t, "account", m.Params[1].Name)
	assert.Equal(t, []logpoint.Scope{
		{Name: "discovery.ledger", Kind: logpoint.TypeScope},
		{Name: "github.com/aalemi-dev/logkit/discovery", Kind: logpoint.PackageScope},
	}, m.Scopes)
	assert.Equal(t, "discovery.ledger.Balance", m.Identity())

	plan := logpoint.Build(m)
	assert.Equal(t, "discovery.ledger", plan.Logger())
	assert.True(t, plan.LogReturnValue())
	assert.Equal(t, "balance {}", plan.Message())
}

func TestFromMethod_PointerReceiverFromValueType(t *testing.T) {
	t.Parallel()
	m, err := FromMethod(reflect.TypeOf(ledger{}), "Transfer",
		WithLogged(logpoint.Logged{Level: logpoint.Warn}))
	require.NoError(t, err)

	require.Len(t, m.Params, 4)
	plan := logpoint.Build(m)
	rule, ok := plan.ErrorParam()
	require.True(t, ok)
	assert.Equal(t, 3, rule.Index())
	assert.Equal(t, logpoint.Warn, plan.Level())
	assert.False(t, plan.LogReturnValue())
}

func TestFromMethod_Interface(t *testing.T) {
	t.Parallel()
	m, err := FromMethod(reflect.TypeOf((*store)(nil)).Elem(), "Get",
		WithScopes(logpoint.Scope{Name: "cache.Store"}))
	require.NoError(t, err)

	require.Len(t, m.Params, 1)
	assert.Equal(t, reflect.TypeOf(""), m.Params[0].Type)
	assert.Equal(t, "cache.Store.Get", m.Identity())
}

func TestFromMethod_NotFound(t *testing.T) {
	t.Parallel()
	_, err := FromMethod(reflect.TypeOf(ledger{}), "Missing")
	assert.True(t, errors.Is(err, ErrMethodNotFound))

	_, err = FromMethod(nil, "Missing")
	assert.ErrorIs(t, err, ErrMethodNotFound)
}
