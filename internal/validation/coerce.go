// internal/validation/coerce.go
package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/anvogue/anvogue-admin/internal/models"
)

var (
	errNotNumber  = errors.New("not a number")
	errNotInteger = errors.New("not an integer")
	errNotRows    = errors.New("not a row collection")
	errNotUpload  = errors.New("not an upload")
)

// CoerceNumber parses a form value as a float. Empty string and nil mean absent.
func CoerceNumber(val any) (*float64, error) {
	var f float64
	switch x := val.(type) {
	case nil:
		return nil, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errNotNumber
		}
		f = parsed
	case *string:
		if x == nil {
			return nil, nil
		}
		return CoerceNumber(*x)
	case float64:
		f = x
	case *float64:
		if x == nil {
			return nil, nil
		}
		f = *x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case *int:
		if x == nil {
			return nil, nil
		}
		f = float64(*x)
	case int64:
		f = float64(x)
	case json.Number:
		return CoerceNumber(string(x))
	default:
		return nil, errNotNumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errNotNumber
	}
	return &f, nil
}

// CoerceInteger is CoerceNumber restricted to whole values.
func CoerceInteger(val any) (*int, error) {
	f, err := CoerceNumber(val)
	if err != nil || f == nil {
		return nil, err
	}
	if math.Trunc(*f) != *f || math.Abs(*f) > math.MaxInt32 {
		return nil, errNotInteger
	}
	n := int(*f)
	return &n, nil
}

// CoerceBool accepts exactly the string "true" and boolean true as true. Anything else that
// is present becomes false; nil stays absent.
func CoerceBool(val any) *bool {
	switch x := val.(type) {
	case nil:
		return nil
	case *bool:
		if x == nil {
			return nil
		}
		b := *x
		return &b
	case bool:
		return &x
	case string:
		b := x == "true"
		return &b
	default:
		b := false
		return &b
	}
}

// CoerceText returns the trimmed string and whether it counts as present.
func CoerceText(val any) (string, bool) {
	switch x := val.(type) {
	case string:
		s := strings.TrimSpace(x)
		return s, s != ""
	case *string:
		if x == nil {
			return "", false
		}
		return CoerceText(*x)
	case models.Genre:
		return CoerceText(string(x))
	default:
		return "", false
	}
}

// rawRow is a size row before its fields are coerced.
type rawRow map[string]any

// CoerceRows normalizes a row collection. A string is decoded as JSON first; a decode failure
// means the value is absent rather than invalid.
func CoerceRows(val any) ([]rawRow, bool, error) {
	switch x := val.(type) {
	case nil:
		return nil, false, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return nil, false, nil
		}
		var decoded any
		if err := json.Unmarshal([]byte(x), &decoded); err != nil {
			return nil, false, nil
		}
		return CoerceRows(decoded)
	case []models.SizeRow:
		rows := make([]rawRow, len(x))
		for i, r := range x {
			rows[i] = rawRow{"taille": r.Taille, "quantite": r.Quantite, "prix": r.Prix}
		}
		return rows, true, nil
	case []map[string]any:
		rows := make([]rawRow, len(x))
		for i, r := range x {
			rows[i] = rawRow(r)
		}
		return rows, true, nil
	case []map[string]string:
		rows := make([]rawRow, len(x))
		for i, r := range x {
			row := rawRow{}
			for k, v := range r {
				row[k] = v
			}
			rows[i] = row
		}
		return rows, true, nil
	case []any:
		rows := make([]rawRow, len(x))
		for i, item := range x {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, true, errNotRows
			}
			rows[i] = rawRow(m)
		}
		return rows, true, nil
	default:
		return nil, true, errNotRows
	}
}

// CoerceUploads accepts one upload or a list of them. An empty list is absent.
func CoerceUploads(val any) ([]*models.Upload, error) {
	switch x := val.(type) {
	case nil:
		return nil, nil
	case *models.Upload:
		if x == nil {
			return nil, nil
		}
		return []*models.Upload{x}, nil
	case models.Upload:
		return []*models.Upload{&x}, nil
	case []*models.Upload:
		if len(x) == 0 {
			return nil, nil
		}
		return x, nil
	case []models.Upload:
		if len(x) == 0 {
			return nil, nil
		}
		out := make([]*models.Upload, len(x))
		for i := range x {
			out[i] = &x[i]
		}
		return out, nil
	default:
		return nil, errNotUpload
	}
}
