package ursa

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/scoir/corral/pkg/schema"
)

// CredentialValues collects the raw and encoded form of every claim of a
// credential under issuance. The encoded form is what the CL signature
// commits to; the raw form is what holders see and what search tags are
// derived from, so both sides of issuance and search must agree on this
// encoding.
type CredentialValues struct {
	attrs schema.CredentialValues
}

func NewValues() *CredentialValues {
	return &CredentialValues{
		attrs: schema.CredentialValues{},
	}
}

func (r *CredentialValues) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.attrs)
}

// Values returns the accumulated claim set.
func (r *CredentialValues) Values() schema.CredentialValues {
	return r.attrs
}

func (r *CredentialValues) AddValue(name string, raw interface{}) {
	r.attrs[name] = &schema.AttributeValue{
		Raw:     raw,
		Encoded: EncodeValue(raw),
	}
}

// EncodeValue maps a raw claim value onto the 256 bit integer space used
// by CL commitments. Integers in the int32 range pass through verbatim so
// they stay usable in predicates; everything else is hashed.
func EncodeValue(raw interface{}) string {
	var enc string

	switch v := raw.(type) {
	case nil:
		enc = toEncodedNumber("None")
	case string:
		i, err := strconv.Atoi(v)
		if err == nil && (i <= math.MaxInt32 && i >= math.MinInt32) {
			enc = v
		} else {
			enc = toEncodedNumber(v)
		}
	case bool:
		if v {
			enc = "1"
		} else {
			enc = "0"
		}
	case int32:
		enc = strconv.Itoa(int(v))
	case int64:
		if v <= math.MaxInt32 && v >= math.MinInt32 {
			enc = strconv.Itoa(int(v))
		} else {
			enc = toEncodedNumber(strconv.Itoa(int(v)))
		}
	case int:
		if v <= math.MaxInt32 && v >= math.MinInt32 {
			enc = strconv.Itoa(v)
		} else {
			enc = toEncodedNumber(strconv.Itoa(v))
		}
	case float64:
		if v == 0 {
			enc = toEncodedNumber("0.0")
		} else {
			enc = toEncodedNumber(fmt.Sprintf("%f", v))
		}
	default:
		//Not sure what to do with Go and unknown types...  this works for now
		enc = toEncodedNumber(fmt.Sprintf("%v", v))
	}

	return enc
}

// RawString is the canonical string form of a raw claim value. Search
// tags store this form, so it must match the raw value recorded at
// issuance or tag lookups will miss.
func RawString(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.Itoa(int(v))
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toEncodedNumber(raw string) string {
	b := []byte(raw)
	hasher := sha256.New()
	hasher.Write(b)

	sh := hasher.Sum(nil)
	i := new(big.Int)
	i.SetBytes(sh)

	return i.String()
}
