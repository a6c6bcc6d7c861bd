package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/redis"
)

func TestCachedStoreServesAndInvalidates(t *testing.T) {
	s := newTestStore(t)
	f := seed(t, s)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cached := NewCachedStore(s, redis.NewWithClient(client, time.Minute))

	views, err := cached.ListServiceViews(ctx, ServiceFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, mr.Exists(serviceListKey(ServiceFilter{})))

	view, err := cached.GetServiceView(ctx, f.service.ID)
	require.NoError(t, err)
	assert.Equal(t, "50.00", view.PricePerHour.String())
	assert.True(t, mr.Exists(serviceItemKey(f.service.ID)))

	again, err := cached.GetServiceView(ctx, f.service.ID)
	require.NoError(t, err)
	assert.Equal(t, view.Provider.User.FirstName, again.Provider.User.FirstName)
	assert.Equal(t, "50.00", again.PricePerHour.String())

	require.NoError(t, cached.CreateService(ctx, &models.Service{
		ProviderID:   f.profile.ID,
		Category:     "Cleaning",
		Title:        "Deep clean",
		PricePerHour: models.MustMoney("25"),
	}))
	assert.False(t, mr.Exists(serviceListKey(ServiceFilter{})))
	assert.False(t, mr.Exists(serviceItemKey(f.service.ID)))

	views, err = cached.ListServiceViews(ctx, ServiceFilter{})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestCachedStoreWithoutRedis(t *testing.T) {
	s := newTestStore(t)
	f := seed(t, s)

	cached := NewCachedStore(s, nil)
	view, err := cached.GetServiceView(context.Background(), f.service.ID)
	require.NoError(t, err)
	assert.Equal(t, f.service.ID, view.ID)

	_, err = cached.GetServiceView(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
