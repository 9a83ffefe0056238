// internal/form/form.go
package form

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/validation"
)

var (
	ErrRowIndex  = errors.New("row index out of range")
	ErrRowsValue = errors.New("not a row collection")
)

// companions lists fields that must travel with a dirty field for it to be meaningful.
var companions = map[string][]string{
	"prixPromotion": {"estEnPromotion"},
}

// Values holds form control values as entered: mostly strings, booleans for checkboxes.
type Values map[string]any

// Row is one editable size row. Key stays the same for the row's lifetime so a client can
// keep focus on it while other rows are removed.
type Row struct {
	Key      string `json:"key"`
	Taille   string `json:"taille"`
	Quantite string `json:"quantite"`
	Prix     string `json:"prix"`
}

// Form is the edit buffer of one entity dialog. It is not safe for concurrent use; the
// owning dialog serializes access.
type Form struct {
	rowsField string
	values    Values
	rows      []Row
	dirty     map[string]bool
	errors    validation.FieldErrors
}

// New returns an empty form whose row collection is submitted under rowsField.
func New(rowsField string) *Form {
	f := &Form{rowsField: rowsField}
	f.Initialize(nil, nil)
	return f
}

// Initialize replaces every value and row and clears dirty state and errors.
func (f *Form) Initialize(values Values, rows []models.SizeRow) {
	f.values = Values{}
	for k, v := range values {
		f.values[k] = v
	}
	f.rows = make([]Row, 0, len(rows))
	for _, r := range rows {
		f.rows = append(f.rows, newRow(r))
	}
	f.dirty = map[string]bool{}
	f.errors = nil
}

func (f *Form) RowsField() string {
	return f.rowsField
}

func (f *Form) Set(field string, value any) {
	f.values[field] = value
	f.dirty[field] = true
}

func (f *Form) Get(field string) any {
	return f.values[field]
}

// Values returns a copy of the scalar values.
func (f *Form) Values() Values {
	out := make(Values, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// AppendRow adds r at the end and returns its key.
func (f *Form) AppendRow(r models.SizeRow) string {
	row := newRow(r)
	f.rows = append(f.rows, row)
	f.dirty[f.rowsField] = true
	return row.Key
}

// RemoveRow deletes the row at index; later rows shift down by one.
func (f *Form) RemoveRow(index int) error {
	if index < 0 || index >= len(f.rows) {
		return fmt.Errorf("%w: %d", ErrRowIndex, index)
	}
	rows := make([]Row, 0, len(f.rows)-1)
	rows = append(rows, f.rows[:index]...)
	f.rows = append(rows, f.rows[index+1:]...)
	f.dirty[f.rowsField] = true
	return nil
}

// UpdateRow sets one field ("taille", "quantite" or "prix") of the row at index.
func (f *Form) UpdateRow(index int, field, value string) error {
	if index < 0 || index >= len(f.rows) {
		return fmt.Errorf("%w: %d", ErrRowIndex, index)
	}
	row := &f.rows[index]
	switch field {
	case "taille":
		row.Taille = value
	case "quantite":
		row.Quantite = value
	case "prix":
		row.Prix = value
	default:
		return fmt.Errorf("unknown row field %q", field)
	}
	f.dirty[f.rowsField] = true
	return nil
}

// SetRows replaces the row collection from a loose value: a JSON string, a list of row
// objects, or nil or "" to clear it. Every row gets a new key.
func (f *Form) SetRows(val any) error {
	raw, present, err := validation.CoerceRows(val)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRowsValue, err)
	}
	if s, ok := val.(string); ok && !present && strings.TrimSpace(s) != "" {
		return ErrRowsValue
	}
	rows := make([]Row, len(raw))
	for i, r := range raw {
		rows[i] = Row{
			Key:      uuid.NewString(),
			Taille:   cellText(r["taille"]),
			Quantite: cellText(r["quantite"]),
			Prix:     cellText(r["prix"]),
		}
	}
	f.rows = rows
	f.dirty[f.rowsField] = true
	return nil
}

// Rows returns a copy of the row collection; never nil.
func (f *Form) Rows() []Row {
	rows := make([]Row, len(f.rows))
	copy(rows, f.rows)
	return rows
}

// Dirty is advisory; it never gates submission.
func (f *Form) Dirty() bool {
	return len(f.dirty) > 0
}

func (f *Form) DirtyFields() []string {
	fields := make([]string, 0, len(f.dirty))
	for k := range f.dirty {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// PromotionActive reports whether the promotional price should be shown and submitted. The
// price itself is kept while the flag is off.
func (f *Form) PromotionActive() bool {
	b := validation.CoerceBool(f.values["estEnPromotion"])
	return b != nil && *b
}

// Input builds validator input. With onlyDirty set, only fields touched since Initialize are
// included, which is what a partial update sends.
func (f *Form) Input(onlyDirty bool) validation.Input {
	in := validation.Input{}
	for k, v := range f.values {
		if onlyDirty && !f.dirty[k] {
			continue
		}
		in[k] = v
		if onlyDirty {
			for _, c := range companions[k] {
				if cv, ok := f.values[c]; ok {
					in[c] = cv
				}
			}
		}
	}
	if !onlyDirty || f.dirty[f.rowsField] {
		rows := make([]map[string]any, len(f.rows))
		for i, r := range f.rows {
			rows[i] = map[string]any{"taille": r.Taille, "quantite": r.Quantite, "prix": r.Prix}
		}
		in[f.rowsField] = rows
	}
	return in
}

func (f *Form) SetErrors(errs validation.FieldErrors) {
	f.errors = errs
}

func (f *Form) Errors() validation.FieldErrors {
	return f.errors
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(x)
	}
}

func newRow(r models.SizeRow) Row {
	return Row{
		Key:      uuid.NewString(),
		Taille:   r.Taille,
		Quantite: strconv.Itoa(r.Quantite),
		Prix:     strconv.FormatFloat(r.Prix, 'f', -1, 64),
	}
}
