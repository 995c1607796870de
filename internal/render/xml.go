package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MarshalXML renders v as an XML document wrapped in a <response> root
// element with no type attributes. Struct fields are named after their json
// tags so the XML carries exactly the same keys as the JSON rendering; slice
// elements are wrapped in <item>. encoding/xml cannot marshal maps or honor
// json tags, hence this walker.
func MarshalXML(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := encodeElement(&buf, "response", reflect.ValueOf(v)); err != nil {
		return nil, fmt.Errorf("marshal xml: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeElement(buf *bytes.Buffer, name string, v reflect.Value) error {
	buf.WriteString("<" + name + ">")
	if err := encodeValue(buf, v); err != nil {
		return err
	}
	buf.WriteString("</" + name + ">")
	return nil
}

func encodeValue(buf *bytes.Buffer, v reflect.Value) error {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			// A null field becomes an empty element.
			return nil
		}
		return encodeValue(buf, v.Elem())

	case reflect.Struct:
		if t, ok := v.Interface().(time.Time); ok {
			return writeText(buf, t.UTC().Format(time.RFC3339))
		}
		return encodeStruct(buf, v)

	case reflect.Map:
		return encodeMap(buf, v)

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := encodeElement(buf, "item", v.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.String:
		return writeText(buf, v.String())

	case reflect.Bool:
		return writeText(buf, strconv.FormatBool(v.Bool()))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return writeText(buf, strconv.FormatInt(v.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return writeText(buf, strconv.FormatUint(v.Uint(), 10))

	case reflect.Float32, reflect.Float64:
		return writeText(buf, strconv.FormatFloat(v.Float(), 'g', -1, 64))

	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
}

func encodeStruct(buf *bytes.Buffer, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonFieldName(field)
		if name == "" {
			continue
		}
		if err := encodeElement(buf, name, v.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

func encodeMap(buf *bytes.Buffer, v reflect.Value) error {
	if v.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("unsupported map key type %s", v.Type().Key())
	}
	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := encodeElement(buf, k, v.MapIndex(reflect.ValueOf(k))); err != nil {
			return err
		}
	}
	return nil
}

// jsonFieldName returns the element name for a struct field, taken from the
// json tag. Fields tagged "-" are skipped.
func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name
}

func writeText(buf *bytes.Buffer, s string) error {
	return xml.EscapeText(buf, []byte(s))
}
