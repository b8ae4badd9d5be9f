package generators

import (
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/mmrzaf/blockgenie/internal/domain"
	"github.com/mmrzaf/blockgenie/internal/timeutil"
)

const (
	ParamIntRange       = "int_range"
	ParamFloatRange     = "float_range"
	ParamDateTimeRange  = "datetime_range"
	ParamDateTimeFormat = "datetime_format"
	ParamNameType       = "name_type"
	ParamFullName       = "full_name"
)

// Default bounds used when a numeric column has no range.
const (
	DefaultMin = math.MinInt32
	DefaultMax = math.MaxInt32
)

// Params is the typed parameter set for one category. The concrete types
// are IntParams, FloatParams, DateTimeParams and NameParams.
type Params interface {
	Category() domain.Category
}

type IntRange struct {
	Min, Max int64
}

func (r IntRange) validate() error {
	if r.Min > r.Max {
		return invalid(ParamIntRange, "bounds must be in ascending order, got [%d, %d]", r.Min, r.Max)
	}
	return nil
}

type FloatRange struct {
	Min, Max float64
}

func (r FloatRange) validate() error {
	for _, v := range []float64{r.Min, r.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(ParamFloatRange, "bounds must be finite, got [%v, %v]", r.Min, r.Max)
		}
	}
	if r.Min > r.Max {
		return invalid(ParamFloatRange, "bounds must be in ascending order, got [%v, %v]", r.Min, r.Max)
	}
	return nil
}

type TimeRange struct {
	Min, Max time.Time
}

func (r TimeRange) validate() error {
	if r.Min.IsZero() || r.Max.IsZero() {
		return invalid(ParamDateTimeRange, "contains a null bound")
	}
	if r.Min.After(r.Max) {
		return invalid(ParamDateTimeRange, "bounds must be in ascending order, got [%s, %s]",
			r.Min.Format(time.RFC3339), r.Max.Format(time.RFC3339))
	}
	return nil
}

type IntParams struct {
	Range *IntRange
}

func (IntParams) Category() domain.Category { return domain.CategoryInteger }

type FloatParams struct {
	Range *FloatRange
}

func (FloatParams) Category() domain.Category { return domain.CategoryFloat }

// DateTimeParams.Format is a strftime pattern ("%Y-%m-%d"). %f prints
// microseconds. An empty Format yields time.Time values.
type DateTimeParams struct {
	Range  *TimeRange
	Format string
}

func (DateTimeParams) Category() domain.Category { return domain.CategoryDateTime }

func (p DateTimeParams) formatter() (*strftime.Strftime, error) {
	if p.Format == "" {
		return nil, nil
	}
	f, err := strftime.New(p.Format, strftime.WithMicroseconds('f'))
	if err != nil {
		return nil, &ValidationError{Param: ParamDateTimeFormat, Reason: "invalid format pattern " + p.Format, Err: err}
	}
	return f, nil
}

type NameType string

const (
	NameFull  NameType = ""
	NameFirst NameType = "first"
	NameLast  NameType = "last"
)

// NameParams.FullName is accepted for compatibility but has no effect:
// Type alone selects between the full name and a single token.
type NameParams struct {
	Type     NameType
	FullName *bool
}

func (NameParams) Category() domain.Category { return domain.CategoryName }

// ParseParams converts the loose parameter mapping of a column into the
// typed parameters of its category. Keys that do not apply to the category
// are ignored.
func ParseParams(category domain.Category, raw map[string]any) (Params, error) {
	return parseParams(category, raw, time.Now())
}

// parseParams resolves relative datetime bounds ("-30d") against now.
func parseParams(category domain.Category, raw map[string]any, now time.Time) (Params, error) {
	switch category {
	case domain.CategoryInteger:
		return parseIntParams(raw)
	case domain.CategoryFloat:
		return parseFloatParams(raw)
	case domain.CategoryDateTime:
		return parseDateTimeParams(raw, now)
	case domain.CategoryName:
		return parseNameParams(raw)
	default:
		return nil, &InvalidCategoryError{Category: string(category)}
	}
}

func parseIntParams(raw map[string]any) (IntParams, error) {
	bounds, err := rangeBounds(ParamIntRange, raw)
	if err != nil || bounds == nil {
		return IntParams{}, err
	}
	var r IntRange
	for i, b := range bounds {
		v, ok := toInt64(b)
		if !ok {
			return IntParams{}, invalid(ParamIntRange, "bound %v is not an integer", b)
		}
		if i == 0 {
			r.Min = v
		} else {
			r.Max = v
		}
	}
	if err := r.validate(); err != nil {
		return IntParams{}, err
	}
	return IntParams{Range: &r}, nil
}

func parseFloatParams(raw map[string]any) (FloatParams, error) {
	bounds, err := rangeBounds(ParamFloatRange, raw)
	if err != nil || bounds == nil {
		return FloatParams{}, err
	}
	var r FloatRange
	for i, b := range bounds {
		v, ok := toFloat64(b)
		if !ok {
			return FloatParams{}, invalid(ParamFloatRange, "bound %v is not a number", b)
		}
		if i == 0 {
			r.Min = v
		} else {
			r.Max = v
		}
	}
	if err := r.validate(); err != nil {
		return FloatParams{}, err
	}
	return FloatParams{Range: &r}, nil
}

func parseDateTimeParams(raw map[string]any, now time.Time) (DateTimeParams, error) {
	var p DateTimeParams

	if f, ok := raw[ParamDateTimeFormat]; ok && f != nil {
		s, ok := f.(string)
		if !ok {
			return DateTimeParams{}, invalid(ParamDateTimeFormat, "must be a string, got %T", f)
		}
		p.Format = s
		if _, err := p.formatter(); err != nil {
			return DateTimeParams{}, err
		}
	}

	bounds, err := rangeBounds(ParamDateTimeRange, raw)
	if err != nil || bounds == nil {
		return p, err
	}
	var r TimeRange
	for i, b := range bounds {
		v, err := toTime(b, now)
		if err != nil {
			return DateTimeParams{}, &ValidationError{Param: ParamDateTimeRange, Reason: "invalid bound", Err: err}
		}
		if i == 0 {
			r.Min = v
		} else {
			r.Max = v
		}
	}
	if err := r.validate(); err != nil {
		return DateTimeParams{}, err
	}
	p.Range = &r
	return p, nil
}

func parseNameParams(raw map[string]any) (NameParams, error) {
	var p NameParams
	if v, ok := raw[ParamNameType]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return NameParams{}, invalid(ParamNameType, "must be a string, got %T", v)
		}
		switch NameType(strings.ToLower(s)) {
		case NameFull:
		case NameFirst:
			p.Type = NameFirst
		case NameLast:
			p.Type = NameLast
		default:
			return NameParams{}, invalid(ParamNameType, "must be %q or %q, got %q", NameFirst, NameLast, s)
		}
	}
	if v, ok := raw[ParamFullName]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return NameParams{}, invalid(ParamFullName, "must be a bool, got %T", v)
		}
		p.FullName = &b
	}
	return p, nil
}

// rangeBounds returns the two bounds of a range parameter, or nil when the
// parameter is absent. Any list or array type is accepted.
func rangeBounds(param string, raw map[string]any) ([]any, error) {
	v, ok := raw[param]
	if !ok || v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, invalid(param, "must be a list of 2 bounds, got %T", v)
	}
	if rv.Len() != 2 {
		return nil, invalid(param, "expected exactly 2 bounds, got %d", rv.Len())
	}
	bounds := make([]any, 2)
	for i := 0; i < 2; i++ {
		b, ok := deref(rv.Index(i))
		if !ok {
			return nil, invalid(param, "contains a null bound")
		}
		bounds[i] = b
	}
	return bounds, nil
}

func deref(v reflect.Value) (any, bool) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func toInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint:
		if uint64(val) > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case uint64:
		if val > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case float64:
		if val != math.Trunc(val) || val < math.MinInt64 || val >= math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case float32:
		return toInt64(float64(val))
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	default:
		if i, ok := toInt64(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}

func toTime(v any, now time.Time) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case string:
		return timeutil.ParseTime(val, now)
	default:
		return time.Time{}, invalid("", "unsupported bound type %T", v)
	}
}
