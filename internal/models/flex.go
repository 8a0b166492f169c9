/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexInt decodes JSON numbers, numeric strings and null.
// null and "" leave the current value untouched.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*f = FlexInt(i)
		return nil
	}
	fl, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", raw)
	}
	*f = FlexInt(int64(fl))
	return nil
}

// Int returns the value as an int
func (f FlexInt) Int() int {
	return int(f)
}

// FlexString decodes JSON strings, numbers, booleans and null
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	switch {
	case len(raw) == 0 || string(raw) == "null":
		return nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("invalid string %s: %w", raw, err)
		}
		*f = FlexString(s)
	case raw[0] == '{' || raw[0] == '[':
		return fmt.Errorf("expected scalar, got %s", raw)
	default:
		*f = FlexString(raw)
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// FlexDecimal decodes JSON numbers, numeric strings, null and "".
// null and "" decode to an unset value.
type FlexDecimal decimal.NullDecimal

func NewFlexDecimal(d decimal.Decimal) FlexDecimal {
	return FlexDecimal{Decimal: d, Valid: true}
}

func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(strings.Trim(string(bytes.TrimSpace(data)), `"`))
	if raw == "" || raw == "null" {
		*f = FlexDecimal{}
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid decimal %q", raw)
	}
	*f = NewFlexDecimal(d)
	return nil
}

func (f FlexDecimal) MarshalJSON() ([]byte, error) {
	return decimal.NullDecimal(f).MarshalJSON()
}

// Null returns the value as a decimal.NullDecimal
func (f FlexDecimal) Null() decimal.NullDecimal {
	return decimal.NullDecimal(f)
}

// OrZero returns the value, or zero when unset
func (f FlexDecimal) OrZero() decimal.Decimal {
	if !f.Valid {
		return decimal.Zero
	}
	return f.Decimal
}

func flexIntPtr(v *FlexInt) *int {
	if v == nil {
		return nil
	}
	i := v.Int()
	return &i
}

func toFlexIntPtr(v *int) *FlexInt {
	if v == nil {
		return nil
	}
	f := FlexInt(*v)
	return &f
}
