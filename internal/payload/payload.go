// internal/payload/payload.go
package payload

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/anvogue/anvogue-admin/internal/models"
)

type Field struct {
	Name  string
	Value any
}

type File struct {
	Field  string
	Upload *models.Upload
}

// Payload is a request body before encoding. It is sent as multipart when it carries at
// least one file and as JSON otherwise, whatever entity it describes.
type Payload struct {
	Fields []Field
	Files  []File
}

func New() *Payload {
	return &Payload{}
}

// Add appends a scalar field. Nil values are skipped.
func (p *Payload) Add(name string, value any) *Payload {
	if value == nil {
		return p
	}
	p.Fields = append(p.Fields, Field{Name: name, Value: value})
	return p
}

// AddFile appends an upload under field; nil uploads are skipped.
func (p *Payload) AddFile(field string, u *models.Upload) *Payload {
	if u == nil {
		return p
	}
	p.Files = append(p.Files, File{Field: field, Upload: u})
	return p
}

func (p *Payload) Multipart() bool {
	return len(p.Files) > 0
}

func (p *Payload) Has(name string) bool {
	for _, f := range p.Fields {
		if f.Name == name {
			return true
		}
	}
	for _, f := range p.Files {
		if f.Field == name {
			return true
		}
	}
	return false
}

// Names lists fields then file fields in insertion order.
func (p *Payload) Names() []string {
	names := make([]string, 0, len(p.Fields)+len(p.Files))
	for _, f := range p.Fields {
		names = append(names, f.Name)
	}
	for _, f := range p.Files {
		names = append(names, f.Field)
	}
	return names
}

// FormData renders scalar fields as multipart text values. Row collections become a JSON
// string.
func (p *Payload) FormData() (map[string]string, error) {
	out := make(map[string]string, len(p.Fields))
	for _, f := range p.Fields {
		s, err := formValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out[f.Name] = s
	}
	return out, nil
}

// JSON renders the fields as a JSON object body. Files are never part of it.
func (p *Payload) JSON() map[string]any {
	out := make(map[string]any, len(p.Fields))
	for _, f := range p.Fields {
		out[f.Name] = f.Value
	}
	return out
}

func formValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case []models.SizeRow:
		if x == nil {
			x = []models.SizeRow{}
		}
		b, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return "", fmt.Errorf("unsupported value %T: %w", v, err)
		}
		return string(b), nil
	}
}
