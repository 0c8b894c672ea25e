package collection

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"modernc.org/sqlite"
)

func init() {
	// field_at_index(flds, ord) extracts one field value from the
	// separator-joined flds column; compiled field searches rely on it.
	sqlite.MustRegisterDeterministicScalarFunction("field_at_index", 2, fieldAtIndexFunc)
}

func fieldAtIndexFunc(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("field_at_index expects 2 arguments")
	}

	flds, ok := driverValueToString(args[0])
	if !ok {
		return "", nil
	}
	idx, ok := driverValueToInt(args[1])
	if !ok || idx < 0 {
		return "", nil
	}

	fields := strings.Split(flds, FieldSeparator)
	if int(idx) >= len(fields) {
		return "", nil
	}
	return fields[idx], nil
}

func driverValueToString(v driver.Value) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case []byte:
		return string(val), true
	default:
		return fmt.Sprint(val), true
	}
}

func driverValueToInt(v driver.Value) (int64, bool) {
	switch val := v.(type) {
	case int64:
		return val, true
	case float64:
		return int64(val), true
	default:
		return 0, false
	}
}
