// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validater

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
)

const tagKeyName = "valid"

type validater interface {
	validate(interface{}) (bool, error)
}

type defaultValidater struct {
}

func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

type isNotZeroValueValidater struct {
}

func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	typ := reflect.TypeOf(value)
	if typ == nil {
		return false, fmt.Errorf("Should NOT be a nil value")
	}
	kind := typ.Kind()
	switch kind {
	case reflect.String:
		if strings.TrimSpace(value.(string)) == "" {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int64:
		if value.(int64) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Slice:
		if reflect.ValueOf(value).Len() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

type isPositiveValidater struct {
}

func (v isPositiveValidater) validate(value interface{}) (bool, error) {
	if i, ok := value.(int64); ok {
		if i > 0 {
			return true, nil
		}
		return false, fmt.Errorf("Should be greater than zero got %d", i)
	}
	return false, fmt.Errorf("Should be int64")
}

type isHTTPURLValidater struct {
}

func (v isHTTPURLValidater) validate(value interface{}) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("Should be a string")
	}
	u, err := url.Parse(s)
	if err != nil {
		return false, fmt.Errorf("Should be an URL %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false, fmt.Errorf("Should be an http or https URL with a host got '%s'", s)
	}
	return true, nil
}

type isLogLevelValidater struct {
}

func (v isLogLevelValidater) validate(value interface{}) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("Should be a string")
	}
	if !glo.IsSeverity(s) {
		return false, fmt.Errorf("Should be one of DEBUG INFO NOTICE WARNING ERROR CRITICAL got '%s'", s)
	}
	return true, nil
}

func getValidater(kind reflect.Kind, tagValue string) validater {
	tagValueParts := strings.Split(tagValue, ",")
	tagPrefix := tagValueParts[0]
	switch tagPrefix {
	case "isNotZeroValue":
		return isNotZeroValueValidater{}
	case "isPositive":
		return isPositiveValidater{}
	case "isHTTPURL":
		return isHTTPURLValidater{}
	case "isLogLevel":
		return isLogLevelValidater{}
	}
	return defaultValidater{}
}

func getValidationErrors(structure interface{}, pedigree string) []error {
	errs := []error{}
	if structure == nil {
		return errs
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return []error{fmt.Errorf("type %s is not a struct", value.Kind())}
	}

	for i := 0; i < value.NumField(); i++ {
		valueField := value.Field(i)
		typeField := value.Type().Field(i)
		if typeField.PkgPath != "" {
			continue
		}
		if valueField.Kind() == reflect.Interface {
			valueField = valueField.Elem()
		}
		// time.Time is a struct with unexported fields only, tag it valid:"-"
		if typeField.Tag.Get(tagKeyName) != "-" &&
			(valueField.Kind() == reflect.Struct || (valueField.Kind() == reflect.Ptr && valueField.Elem().Kind() == reflect.Struct)) {
			childErrs := getValidationErrors(valueField.Interface(), fmt.Sprintf("%s/%s", pedigree, typeField.Name))
			errs = append(errs, childErrs...)
		} else {
			validater := getValidater(typeField.Type.Kind(), typeField.Tag.Get(tagKeyName))
			var fieldValue interface{}
			if valueField.IsValid() {
				fieldValue = valueField.Interface()
			}
			ok, err := validater.validate(fieldValue)
			if !ok {
				errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, typeField.Name, err))
			}
		}
	}
	return errs
}

// ValidateStruct returns one error listing every invalid field, one per line
func ValidateStruct(structure interface{}, pedigree string) (err error) {
	errs := getValidationErrors(structure, pedigree)
	if len(errs) > 0 {
		messages := make([]string, 0, len(errs))
		for _, e := range errs {
			messages = append(messages, e.Error())
		}
		return fmt.Errorf("settings validation failed\n%s", strings.Join(messages, "\n"))
	}
	return nil
}
