package validation

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxExactInt = 1 << 53

var intType = reflect.TypeOf(Int{})

// Int is a whole JSON number. Besides plain integers it takes integral
// floats (100.0) and numeric strings ("100"). Any other value still decodes
// without error; BindAndValidateJSON reports it after the request's rules.
type Int struct {
	Value int
	raw   string
}

func (n *Int) UnmarshalJSON(b []byte) error {
	*n = Int{}

	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			n.raw = s
			return nil
		}
		s = strings.TrimSpace(str)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		n.raw = string(b)
		return nil
	}

	n.Value = int(f)
	return nil
}

func (n Int) Valid() bool {
	return n.raw == ""
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(intValue, Int{})
	}
}

// intValue lets binding tags such as min and ltefield see the number. An
// unreadable value validates as nil, and its errors are dropped in favor of
// the type error.
func intValue(field reflect.Value) any {
	n, ok := field.Interface().(Int)
	if !ok || !n.Valid() {
		return nil
	}
	return n.Value
}

// invalidInts lists the top-level Int fields of dst that did not hold a whole
// number, keyed by their JSON name.
func invalidInts(dst any) []FieldError {
	v := reflect.ValueOf(dst)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	var out []FieldError
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Type != intType {
			continue
		}

		n := v.Field(i).Interface().(Int)
		if n.Valid() {
			continue
		}

		name := jsonName(sf)
		out = append(out, FieldError{
			Field:   name,
			Rule:    "integer",
			Message: name + " harus berupa bilangan bulat",
		})
	}
	return out
}

func jsonName(sf reflect.StructField) string {
	if tag, _, _ := strings.Cut(sf.Tag.Get("json"), ","); tag != "" && tag != "-" {
		return tag
	}
	return toJSONFieldName(sf.Name)
}
