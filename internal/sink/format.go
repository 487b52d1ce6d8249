package sink

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const timestampLayout = "2006-01-02 15:04:05"

// Literal renders a single value as a SQL literal: NULL for absence,
// lowercase booleans, unquoted numbers, quoted timestamps, and strings with
// doubled single quotes.
func Literal(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case decimal.Decimal:
		return v.String()
	case time.Time:
		return "'" + v.Format(timestampLayout) + "'"
	case *time.Time:
		if v == nil {
			return "NULL"
		}
		return "'" + v.Format(timestampLayout) + "'"
	case uuid.UUID:
		return "'" + v.String() + "'"
	case string:
		return quote(v)
	case *string:
		if v == nil {
			return "NULL"
		}
		return quote(*v)
	case fmt.Stringer:
		return quote(v.String())
	default:
		return quote(fmt.Sprintf("%v", v))
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
