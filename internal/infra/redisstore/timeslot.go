package redisstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/infra"

	"github.com/redis/go-redis/v9"
)

const (
	fieldMethod    = "method"
	fieldStart     = "start"
	fieldEnd       = "end"
	fieldAvailable = "available"
)

// reserveScript flips available 1 -> 0 and drops the slot from its method index in one
// server-side step. Returns 1 when this call made the flip.
var reserveScript = redis.NewScript(`
if redis.call('HGET', KEYS[1], 'available') ~= '1' then
  return 0
end
redis.call('HSET', KEYS[1], 'available', '0')
local method = redis.call('HGET', KEYS[1], 'method')
redis.call('ZREM', ARGV[2] .. ':slots:' .. method .. ':available', ARGV[1])
return 1
`)

type TimeSlotStore struct {
	rdb  redis.UniversalClient
	keys keys
}

func (s *TimeSlotStore) Provision(ctx context.Context, slot *delivery.TimeSlot) (*delivery.TimeSlot, error) {
	id, err := s.rdb.Incr(ctx, s.keys.slotSeq()).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to allocate time slot id", err)
	}
	stored := slot.WithID(id)

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.keys.slot(id), encodeSlot(stored))
		if stored.IsAvailable() {
			pipe.ZAdd(ctx, s.keys.available(stored.Method().String()), redis.Z{
				Score:  float64(stored.Start().Unix()),
				Member: strconv.FormatInt(id, 10),
			})
		}
		return nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to store time slot", err)
	}
	return stored, nil
}

func (s *TimeSlotStore) FindAvailable(ctx context.Context, method delivery.Method) ([]*delivery.TimeSlot, error) {
	members, err := s.rdb.ZRange(ctx, s.keys.available(method.String()), 0, -1).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read available slots", err)
	}
	if len(members) == 0 {
		return []*delivery.TimeSlot{}, nil
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid slot index member", err, infra.KindDecodeFailed)
		}
		ids = append(ids, id)
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, s.keys.slot(id))
		}
		return nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load slots", err)
	}

	slots := make([]*delivery.TimeSlot, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		slot, err := decodeSlot(ids[i], fields)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode slot", err, infra.KindDecodeFailed)
		}
		// the index may briefly lag a reservation made between ZRANGE and HGETALL
		if slot.IsAvailable() && slot.Method() == method {
			slots = append(slots, slot)
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].Start().Equal(slots[j].Start()) {
			return slots[i].Start().Before(slots[j].Start())
		}
		return slots[i].ID() < slots[j].ID()
	})
	return slots, nil
}

func (s *TimeSlotStore) FindByID(ctx context.Context, id int64) (*delivery.TimeSlot, error) {
	fields, err := s.rdb.HGetAll(ctx, s.keys.slot(id)).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load time slot", err)
	}
	if len(fields) == 0 {
		return nil, infra.NotFound(fmt.Sprintf("time slot %d not found", id))
	}

	slot, err := decodeSlot(id, fields)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode time slot", err, infra.KindDecodeFailed)
	}
	return slot, nil
}

func (s *TimeSlotStore) TrySetUnavailable(ctx context.Context, id int64) (bool, error) {
	n, err := reserveScript.Run(ctx, s.rdb,
		[]string{s.keys.slot(id)},
		strconv.FormatInt(id, 10), s.keys.prefix,
	).Int()
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve time slot", err)
	}
	return n == 1, nil
}

func encodeSlot(slot *delivery.TimeSlot) map[string]any {
	available := "0"
	if slot.IsAvailable() {
		available = "1"
	}
	return map[string]any{
		fieldMethod:    slot.Method().String(),
		fieldStart:     slot.Start().UTC().Format(time.RFC3339Nano),
		fieldEnd:       slot.End().UTC().Format(time.RFC3339Nano),
		fieldAvailable: available,
	}
}

var errMissingSlotField = errors.New("missing slot field")

func decodeSlot(id int64, fields map[string]string) (*delivery.TimeSlot, error) {
	for _, f := range []string{fieldMethod, fieldStart, fieldEnd, fieldAvailable} {
		if _, ok := fields[f]; !ok {
			return nil, fmt.Errorf("%w: %s", errMissingSlotField, f)
		}
	}

	method, err := delivery.ParseMethod(fields[fieldMethod])
	if err != nil {
		return nil, err
	}
	start, err := time.Parse(time.RFC3339Nano, fields[fieldStart])
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := time.Parse(time.RFC3339Nano, fields[fieldEnd])
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	return delivery.RestoreTimeSlot(id, method, start, end, fields[fieldAvailable] == "1"), nil
}
