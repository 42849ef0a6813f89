package letters

import (
	"fmt"
	"regexp"
	"strings"
)

var nikPattern = regexp.MustCompile(`^\d{16}$`)

// lookup resolves a possibly dotted field name ("wali.nik") against the
// decoded form payload.
func lookup(form map[string]any, name string) (any, bool) {
	head, rest, nested := strings.Cut(name, ".")
	if !nested {
		v, ok := form[name]
		return v, ok
	}
	sub, ok := form[head].(map[string]any)
	if !ok {
		return nil, false
	}
	return lookup(sub, rest)
}

func asString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// Validate checks a decoded form payload against the schema. Dates are
// deliberately left as free text since the registry stores them in several
// historical formats.
func (s *Schema) Validate(form map[string]any) error {
	for _, field := range s.Fields {
		raw, present := lookup(form, field.Name)
		value := asString(raw)

		switch field.Kind {
		case KindNIK:
			if !nikPattern.MatchString(value) {
				return fmt.Errorf("%s harus 16 digit", field.Label)
			}
		case KindOptionalNIK:
			if value != "" && value != "-" && !nikPattern.MatchString(value) {
				return fmt.Errorf("%s harus kosong atau 16 digit", field.Label)
			}
		case KindMembers:
			if present {
				if err := validateMembers(raw, field.Label); err != nil {
					return err
				}
			}
		default:
			if field.Required && value == "" {
				return fmt.Errorf("%s wajib diisi", field.Label)
			}
		}
	}
	return nil
}

func validateMembers(raw any, label string) error {
	items, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("%s tidak valid", label)
	}
	for i, item := range items {
		member, ok := item.(map[string]any)
		if !ok {
			return fmt.Errorf("%s #%d tidak valid", label, i+1)
		}
		if !nikPattern.MatchString(asString(member["nik"])) {
			return fmt.Errorf("NIK anggota keluarga #%d harus 16 digit", i+1)
		}
		if asString(member["name"]) == "" {
			return fmt.Errorf("Nama anggota keluarga #%d wajib diisi", i+1)
		}
		if asString(member["relationship"]) == "" {
			return fmt.Errorf("Hubungan anggota keluarga #%d wajib diisi", i+1)
		}
	}
	return nil
}

// MissingAttachments returns the labels of required attachments absent from
// the uploaded set, keyed by attachment field name.
func (s *Schema) MissingAttachments(uploaded map[string]bool) []string {
	var missing []string
	for _, att := range s.Attachments {
		if att.Required && !uploaded[att.FieldName] {
			missing = append(missing, att.Label)
		}
	}
	return missing
}
