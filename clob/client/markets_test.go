package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/goclob/clob/types"
)

func TestGetServerTime(t *testing.T) {
	server := newMockExchange(t)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, nil)

	ts, err := c.GetServerTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), ts)
}

func TestGetOrderBook(t *testing.T) {
	server := newMockExchange(t)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, nil)

	book, err := c.GetOrderBook(context.Background(), "1234")
	require.NoError(t, err)
	assert.Equal(t, "1234", book.AssetID)
	require.Len(t, book.Asks, 2)
	assert.Equal(t, "0.50", book.Asks[0].Price)
	require.Len(t, book.Bids, 1)
}

func TestGetTickSize_CachedAcrossCalls(t *testing.T) {
	server := newMockExchange(t)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, nil)
	ctx := context.Background()

	ts, err := c.GetTickSize(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, types.TickSize001, ts)

	// 第二次命中缓存（服务器关掉也能读到）
	server.Close()
	ts, err = c.GetTickSize(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, types.TickSize001, ts)
}

func TestGetTickSize_UnknownToken(t *testing.T) {
	server := newMockExchange(t)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, nil)

	_, err := c.GetTickSize(context.Background(), "0")
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrUnknownToken))
}

func TestGetNegRisk(t *testing.T) {
	server := newMockExchange(t)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, nil)
	ctx := context.Background()

	nr, err := c.GetNegRisk(ctx, "1234")
	require.NoError(t, err)
	assert.False(t, nr)

	nr, err = c.GetNegRisk(ctx, "4321")
	require.NoError(t, err)
	assert.True(t, nr)
}

func TestGetMarket(t *testing.T) {
	server := newMockExchange(t)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, nil)

	market, err := c.GetMarket(context.Background(), "0xcond")
	require.NoError(t, err)
	assert.Equal(t, "0xcond", market.ConditionID)
	require.Len(t, market.Tokens, 2)
	assert.Equal(t, "1234", market.Tokens[0].TokenID)
	assert.True(t, market.AcceptingOrders)
}

func TestGetMidpointsAndPrices(t *testing.T) {
	server := newMockExchange(t)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, nil)
	ctx := context.Background()

	mids, err := c.GetMidpoints(ctx, []types.BookParams{{TokenID: "1234"}})
	require.NoError(t, err)
	assert.Equal(t, "0.475", mids["1234"])

	prices, err := c.GetPrices(ctx, []types.BookParams{{TokenID: "1234", Side: types.SideBuy}})
	require.NoError(t, err)
	assert.Equal(t, "0.50", prices["1234"]["BUY"])
}

func TestCalculateMarketPrice(t *testing.T) {
	server := newMockExchange(t)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, nil)

	price, err := c.CalculateMarketPrice(context.Background(), "1234", types.SideBuy, 4.15, types.OrderTypeFOK)
	require.NoError(t, err)
	assert.InDelta(t, 0.52, price, 1e-9)
}

func TestGetOrderBook_TransportError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", types.ChainPolygon, nil)

	_, err := c.GetOrderBook(context.Background(), "1234")
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrTransport))
}
