package fixtures

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	oidKey = "$oid"
	idKey  = "_id"
)

// NormalizeID returns the plain string form of an identifier. It accepts bare strings,
// `{ "$oid": ... }` wrappers (plain JSON maps or bson documents), decoded ObjectIDs and
// already-embedded records carrying `_id`. Missing input yields "". Unknown shapes are
// treated as already normalized and printed as-is; it never fails.
func NormalizeID(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case primitive.ObjectID:
		if v.IsZero() {
			return ""
		}
		return v.Hex()
	case map[string]any:
		return normalizeWrapped(v[oidKey], v[idKey], v)
	case primitive.M:
		return normalizeWrapped(v[oidKey], v[idKey], v)
	case primitive.D:
		var oid, id any
		for _, elem := range v {
			switch elem.Key {
			case oidKey:
				oid = elem.Value
			case idKey:
				id = elem.Value
			}
		}
		return normalizeWrapped(oid, id, v)
	case json.Number:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func normalizeWrapped(oid, id, whole any) string {
	if oid != nil {
		return NormalizeID(oid)
	}
	if id != nil {
		return NormalizeID(id)
	}
	return fmt.Sprint(whole)
}

// NormalizeIDs normalizes a list of identifiers, dropping empty results.
func NormalizeIDs(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if id := NormalizeID(v); id != "" {
			out = append(out, id)
		}
	}
	return out
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// NormalizeTime reads `$date` wrappers, bson datetimes, RFC3339 strings and unix
// millisecond numbers. Anything else yields nil.
func NormalizeTime(value any) *time.Time {
	var t time.Time
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return nil
		}
		t = *v
	case primitive.DateTime:
		t = v.Time()
	case string:
		parsed, ok := parseTime(v)
		if !ok {
			return nil
		}
		t = parsed
	case int64:
		t = time.UnixMilli(v)
	case int32:
		t = time.UnixMilli(int64(v))
	case float64:
		t = time.UnixMilli(int64(v))
	case map[string]any:
		return normalizeTimeWrapper(v["$date"], v["$numberLong"])
	case primitive.M:
		return normalizeTimeWrapper(v["$date"], v["$numberLong"])
	case primitive.D:
		m := v.Map()
		return normalizeTimeWrapper(m["$date"], m["$numberLong"])
	default:
		return nil
	}
	t = t.UTC()
	return &t
}

func normalizeTimeWrapper(date, numberLong any) *time.Time {
	if date != nil {
		return NormalizeTime(date)
	}
	if s, ok := numberLong.(string); ok {
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return NormalizeTime(ms)
		}
	}
	return nil
}

func parseTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeDecimal converts fixture numbers into decimals; unreadable input is zero.
func normalizeDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	case json.Number:
		return decimalFromString(v.String())
	case string:
		return decimalFromString(v)
	case primitive.Decimal128:
		return decimalFromString(v.String())
	case map[string]any:
		return normalizeDecimal(firstNumberWrapper(v))
	case primitive.M:
		return normalizeDecimal(firstNumberWrapper(v))
	case primitive.D:
		return normalizeDecimal(firstNumberWrapper(v.Map()))
	default:
		return decimal.Zero
	}
}

func firstNumberWrapper(m map[string]any) any {
	for _, key := range []string{"$numberDecimal", "$numberDouble", "$numberLong", "$numberInt"} {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return nil
}

func decimalFromString(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func normalizeInt(value any) int {
	return int(normalizeDecimal(value).IntPart())
}
