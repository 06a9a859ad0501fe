package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const scanBatchSize = 100

// CheckInput controls a scan of the redis session store
type CheckInput struct {
	// Fix removes the values the repository cannot decode
	Fix bool
}

// CorruptValue is a stored value the repository cannot read back
type CorruptValue struct {
	Key    string
	Reason string
}

// CheckOutput reports what the scan found
type CheckOutput struct {
	KeysChecked int
	Corrupt     []CorruptValue
	Removed     int
}

// CheckRedis scans every session key for history entries and resource values
// that fail to decode. With Fix set, bad history entries are removed from their
// list and bad resource values are deleted.
func CheckRedis(ctx context.Context, client redisclient.Client, input CheckInput) (*CheckOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}

	out := &CheckOutput{}
	iter := client.Scan(ctx, 0, sessionKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.KeysChecked++

		var err error
		switch {
		case strings.HasSuffix(key, ":"+historySuffix):
			err = checkHistoryKey(ctx, client, key, input.Fix, out)
		case strings.HasSuffix(key, ":"+resourcesSuffix):
			err = checkResourcesKey(ctx, client, key, input.Fix, out)
		default:
			out.Corrupt = append(out.Corrupt, CorruptValue{Key: key, Reason: "unknown session key"})
		}
		if err != nil {
			return nil, err
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan session keys")
	}

	slog.Info("Session store checked",
		"keys_checked", out.KeysChecked,
		"corrupt", len(out.Corrupt),
		"removed", out.Removed,
	)
	return out, nil
}

func checkHistoryKey(ctx context.Context, client redisclient.Client, key string, fix bool, out *CheckOutput) error {
	items, err := client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to read history %s", key)
	}

	for _, item := range items {
		reason := historyEntryProblem(item)
		if reason == "" {
			continue
		}
		out.Corrupt = append(out.Corrupt, CorruptValue{Key: key, Reason: reason})

		if fix {
			removed, err := client.LRem(ctx, key, 1, item).Result()
			if err != nil {
				return errors.Wrapf(err, "failed to remove history entry from %s", key)
			}
			out.Removed += int(removed)
		}
	}
	return nil
}

func historyEntryProblem(item string) string {
	var entry entities.HistoryEntry
	if err := json.Unmarshal([]byte(item), &entry); err != nil {
		return "history entry is not valid JSON"
	}
	if entry.ID == "" {
		return "history entry has no id"
	}
	if entry.Record == nil {
		return "history entry " + entry.ID + " has no record"
	}
	return ""
}

func checkResourcesKey(ctx context.Context, client redisclient.Client, key string, fix bool, out *CheckOutput) error {
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			// expired between SCAN and GET
			return nil
		}
		return errors.Wrapf(err, "failed to read resources %s", key)
	}

	var resources entities.Resources
	if err := json.Unmarshal([]byte(data), &resources); err == nil {
		return nil
	}
	out.Corrupt = append(out.Corrupt, CorruptValue{Key: key, Reason: "resources are not valid JSON"})

	if fix {
		removed, err := client.Del(ctx, key).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to delete %s", key)
		}
		out.Removed += int(removed)
	}
	return nil
}
