package dvb

import (
	"fmt"
	"strconv"
	"strings"
)

// DeliverySystem identifies a broadcast standard (fe_delivery_system_t).
type DeliverySystem uint32

// Delivery systems known to the kernel.
const (
	SysUndefined  DeliverySystem = 0
	SysDVBCAnnexA DeliverySystem = 1
	SysDVBCAnnexB DeliverySystem = 2
	SysDVBT       DeliverySystem = 3
	SysDSS        DeliverySystem = 4
	SysDVBS       DeliverySystem = 5
	SysDVBS2      DeliverySystem = 6
	SysDVBH       DeliverySystem = 7
	SysISDBT      DeliverySystem = 8
	SysISDBS      DeliverySystem = 9
	SysISDBC      DeliverySystem = 10
	SysATSC       DeliverySystem = 11
	SysATSCMH     DeliverySystem = 12
	SysDMBTH      DeliverySystem = 13
	SysCMMB       DeliverySystem = 14
	SysDAB        DeliverySystem = 15
	SysDVBT2      DeliverySystem = 16
	SysTurbo      DeliverySystem = 17
	SysDVBCAnnexC DeliverySystem = 18
)

const maxDeliverySys = SysDVBCAnnexC

var deliverySystemNames = [...]string{
	SysUndefined:  "UNDEFINED",
	SysDVBCAnnexA: "DVBC/ANNEX_A",
	SysDVBCAnnexB: "DVBC/ANNEX_B",
	SysDVBT:       "DVBT",
	SysDSS:        "DSS",
	SysDVBS:       "DVBS",
	SysDVBS2:      "DVBS2",
	SysDVBH:       "DVBH",
	SysISDBT:      "ISDBT",
	SysISDBS:      "ISDBS",
	SysISDBC:      "ISDBC",
	SysATSC:       "ATSC",
	SysATSCMH:     "ATSCMH",
	SysDMBTH:      "DMBTH",
	SysCMMB:       "CMMB",
	SysDAB:        "DAB",
	SysDVBT2:      "DVBT2",
	SysTurbo:      "TURBO",
	SysDVBCAnnexC: "DVBC/ANNEX_C",
}

// String returns the delivery system name (e.g. "DVBC/ANNEX_A").
func (d DeliverySystem) String() string {
	if d <= maxDeliverySys {
		return deliverySystemNames[d]
	}
	return "SYS_" + strconv.FormatUint(uint64(d), 10)
}

// Valid reports whether d is a known delivery system other than SysUndefined.
func (d DeliverySystem) Valid() bool {
	return d > SysUndefined && d <= maxDeliverySys
}

// AllDeliverySystems returns every known delivery system except
// SysUndefined, in numeric order.
func AllDeliverySystems() []DeliverySystem {
	out := make([]DeliverySystem, 0, maxDeliverySys)
	for d := SysDVBCAnnexA; d <= maxDeliverySys; d++ {
		out = append(out, d)
	}
	return out
}

// ParseDeliverySystem resolves a delivery system name. Matching is
// case-insensitive and treats "/", "_", "-" and "SYS_" prefixes loosely,
// so "dvbc/annex_a", "DVBC_ANNEX_A" and "SYS_DVBC_ANNEX_A" all resolve.
func ParseDeliverySystem(name string) (DeliverySystem, error) {
	key := normalizeSysName(name)
	for i, n := range deliverySystemNames {
		if normalizeSysName(n) == key {
			return DeliverySystem(i), nil
		}
	}
	if key == "DVBC" || key == "DVBCANNEXAC" {
		return SysDVBCAnnexA, nil
	}
	return SysUndefined, fmt.Errorf("unknown delivery system %q", name)
}

func normalizeSysName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "SYS_")
	return strings.NewReplacer("/", "", "_", "", "-", "").Replace(s)
}
