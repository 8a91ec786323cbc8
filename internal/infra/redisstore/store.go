package redisstore

import (
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Key layout, all under the configured prefix:
//
//	{p}:slot:seq                       slot ID sequence
//	{p}:slot:{id}                      hash: method, start, end, available
//	{p}:slots:{method}:available       zset of available slot IDs scored by start time
//	{p}:booking:seq                    booking ID sequence
//	{p}:booking:{id}                   JSON booking record
//	{p}:slot:{id}:booking              booking ID holding the slot; one per slot
type keys struct {
	prefix string
}

func (k keys) slotSeq() string             { return k.prefix + ":slot:seq" }
func (k keys) slot(id int64) string        { return k.prefix + ":slot:" + strconv.FormatInt(id, 10) }
func (k keys) available(m string) string   { return k.prefix + ":slots:" + m + ":available" }
func (k keys) bookingSeq() string          { return k.prefix + ":booking:seq" }
func (k keys) booking(id int64) string     { return k.prefix + ":booking:" + strconv.FormatInt(id, 10) }
func (k keys) slotBooking(id int64) string { return k.slot(id) + ":booking" }

type Option func(*options)

type options struct {
	prefix string
}

func WithKeyPrefix(prefix string) Option {
	return func(o *options) {
		if p := strings.Trim(prefix, ":"); p != "" {
			o.prefix = p
		}
	}
}

func buildKeys(opts []Option) keys {
	o := options{prefix: "delivery"}
	for _, opt := range opts {
		opt(&o)
	}
	return keys{prefix: o.prefix}
}

// Stores groups the Redis-backed stores so callers share one client and key prefix.
type Stores struct {
	Slots    *TimeSlotStore
	Bookings *BookingStore
}

func New(rdb redis.UniversalClient, opts ...Option) *Stores {
	k := buildKeys(opts)
	return &Stores{
		Slots:    &TimeSlotStore{rdb: rdb, keys: k},
		Bookings: &BookingStore{rdb: rdb, keys: k},
	}
}
