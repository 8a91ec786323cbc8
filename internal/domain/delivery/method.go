package delivery

import (
	"errors"
	"strings"
)

var ErrUnknownMethod = errors.New("unknown delivery method")

type Method string

const (
	MethodDrive         Method = "DRIVE"
	MethodDelivery      Method = "DELIVERY"
	MethodDeliveryToday Method = "DELIVERY_TODAY"
	MethodDeliveryASAP  Method = "DELIVERY_ASAP"
)

// declaration order is the catalog order
var catalog = [...]Method{
	MethodDrive,
	MethodDelivery,
	MethodDeliveryToday,
	MethodDeliveryASAP,
}

// Methods returns the supported delivery methods in declaration order.
// The returned slice is a copy; callers may modify it freely.
func Methods() []Method {
	out := make([]Method, len(catalog))
	copy(out, catalog[:])
	return out
}

func ParseMethod(s string) (Method, error) {
	m := Method(strings.TrimSpace(s))
	if !m.IsValid() {
		return "", ErrUnknownMethod
	}
	return m, nil
}

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodDrive, MethodDelivery, MethodDeliveryToday, MethodDeliveryASAP:
		return true
	default:
		return false
	}
}
