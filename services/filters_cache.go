package services

import (
	"context"
	"encoding/json"
	"time"

	"pousada/dto"

	"github.com/redis/go-redis/v9"
)

// SaveLastFilters nhớ bộ lọc bảng phòng của từng phiên lễ tân
func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.BoardFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.BoardFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.BoardFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// Merge yêu cầu cũ với yêu cầu mới
func MergeFilters(old *dto.BoardFilters, new *dto.BoardFilters) *dto.BoardFilters {
	new.Date = orString(new.Date, old.Date)
	new.Search = orString(new.Search, old.Search)
	new.Status = orIntPointer(new.Status, old.Status)
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
