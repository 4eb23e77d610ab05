// Package geoindex keeps the latest rider positions in a Redis GEO set
// and answers radius queries. Storage stays authoritative; the index may lag it.
package geoindex

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"rider-dispatch/internal/domain"
)

const ridersKey = "dispatch:riders:geo"

// Index is a Redis GEO index of rider positions.
type Index struct {
	rdb *redis.Client
	key string
}

// New returns an index backed by rdb.
func New(rdb *redis.Client) *Index {
	return &Index{rdb: rdb, key: ridersKey}
}

// Upsert stores the rider position, replacing any previous one.
func (i *Index) Upsert(ctx context.Context, riderID int64, p domain.Point) error {
	err := i.rdb.GeoAdd(ctx, i.key, &redis.GeoLocation{
		Name:      strconv.FormatInt(riderID, 10),
		Longitude: p.Lon,
		Latitude:  p.Lat,
	}).Err()
	if err != nil {
		return fmt.Errorf("geo upsert rider %d: %w", riderID, err)
	}
	return nil
}

// Remove drops the rider from the index.
func (i *Index) Remove(ctx context.Context, riderID int64) error {
	if err := i.rdb.ZRem(ctx, i.key, strconv.FormatInt(riderID, 10)).Err(); err != nil {
		return fmt.Errorf("geo remove rider %d: %w", riderID, err)
	}
	return nil
}

// Nearby returns rider ids within radiusKm of p, nearest first.
func (i *Index) Nearby(ctx context.Context, p domain.Point, radiusKm float64) ([]int64, error) {
	res, err := i.rdb.GeoRadius(ctx, i.key, p.Lon, p.Lat, &redis.GeoRadiusQuery{
		Radius: radiusKm,
		Unit:   "km",
		Sort:   "ASC",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("geo nearby: %w", err)
	}
	ids := make([]int64, 0, len(res))
	for _, loc := range res {
		id, err := strconv.ParseInt(loc.Name, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Close closes the underlying client.
func (i *Index) Close() error {
	return i.rdb.Close()
}
