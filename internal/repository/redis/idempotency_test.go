package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_SaveAndGetResult(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewIdempotencyStore(rdb, time.Hour)
	ctx := context.Background()

	key := KeyIdemBooking(7, "abc")

	mock.ExpectSet(key, "RES:{\"bookingIds\":[\"x\"]}", time.Hour).SetVal("OK")
	require.NoError(t, store.SaveResult(ctx, key, `{"bookingIds":["x"]}`))

	mock.ExpectGet(key).SetVal("RES:{\"bookingIds\":[\"x\"]}")
	payload, ok, err := store.GetResult(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"bookingIds":["x"]}`, payload)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyStore_GetResult_Missing(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewIdempotencyStore(rdb, time.Hour)

	key := KeyIdemBooking(7, "missing")
	mock.ExpectGet(key).RedisNil()

	_, ok, err := store.GetResult(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdempotencyStore_LockIsNotAResult(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewIdempotencyStore(rdb, time.Hour)
	ctx := context.Background()

	key := KeyIdemBooking(7, "inflight")

	mock.ExpectSetNX(key, "LOCK", time.Minute).SetVal(true)
	locked, err := store.AcquireLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, locked)

	mock.ExpectGet(key).SetVal("LOCK")
	_, ok, err := store.GetResult(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectGet(key).SetVal("LOCK")
	isLocked, err := store.IsLocked(ctx, key)
	require.NoError(t, err)
	assert.True(t, isLocked)

	mock.ExpectDel(key).SetVal(1)
	require.NoError(t, store.Release(ctx, key))
}
