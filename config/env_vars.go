// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	errExpectedPointerToStruct = errors.New("expected a pointer to a struct")
	errUnsupportedSliceType    = errors.New("unsupported slice type")
	errUnsupportedFieldType    = errors.New("unsupported field type")
)

// readEnv populates the struct target points to from the environment variables
// named in its `env` struct tags, recursing into nested structs.
//
// A tag option of "overwrite" replaces values set by defaults or the YAML file;
// without it only zero-valued fields are filled.
func readEnv(target any) error {
	structValue := reflect.ValueOf(target)
	if structValue.Kind() != reflect.Ptr {
		return fmt.Errorf("%w, got %s", errExpectedPointerToStruct, structValue.Kind())
	}

	structValue = structValue.Elem()
	if structValue.Kind() != reflect.Struct {
		return fmt.Errorf("%w, got a pointer to %s", errExpectedPointerToStruct, structValue.Kind())
	}

	structType := structValue.Type()

	for fieldIndex := range structValue.NumField() {
		field := structValue.Field(fieldIndex)
		fieldType := structType.Field(fieldIndex)

		if fieldType.Anonymous {
			if field.Kind() == reflect.Struct {
				if err := readEnv(field.Addr().Interface()); err != nil {
					return err
				}
			}

			continue
		}

		tag := fieldType.Tag.Get("env")
		if tag == "" {
			if field.Kind() == reflect.Struct {
				if err := readEnv(field.Addr().Interface()); err != nil {
					return err
				}
			}

			continue
		}

		parts := strings.Split(tag, ",")
		envVarName := parts[0]
		overwrite := slices.Contains(parts[1:], "overwrite")

		envValue, exists := os.LookupEnv(envVarName)
		if !exists {
			continue
		}

		if !field.CanSet() {
			continue
		}

		// If not overwrite and field already has a non-zero/non-empty value, skip.
		if !overwrite && !isZero(field) {
			continue
		}

		if err := setFieldValue(field, fieldType, envVarName, envValue); err != nil {
			return err
		}
	}

	return nil
}

// setFieldValue sets the field value based on its type.
func setFieldValue(
	field reflect.Value,
	fieldType reflect.StructField,
	envVarName, envValue string,
) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(envValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			parsedDuration, err := time.ParseDuration(envValue)
			if err != nil {
				return fmt.Errorf(
					"failed to parse duration for %s from env var %s (%s): %w",
					fieldType.Name, envVarName, envValue, err)
			}

			field.SetInt(int64(parsedDuration))
		} else {
			intValue, err := strconv.ParseInt(envValue, 10, 64)
			if err != nil {
				return fmt.Errorf(
					"failed to parse int for %s from env var %s (%s): %w",
					fieldType.Name, envVarName, envValue, err)
			}

			field.SetInt(intValue)
		}
	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return fmt.Errorf(
				"failed to parse float for %s from env var %s (%s): %w",
				fieldType.Name, envVarName, envValue, err)
		}

		field.SetFloat(floatValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return fmt.Errorf(
				"failed to parse bool for %s from env var %s (%s): %w",
				fieldType.Name, envVarName, envValue, err)
		}

		field.SetBool(boolValue)
	case reflect.Slice:
		// All slices used in configuration are of strings
		if field.Type().Elem().Kind() == reflect.String {
			values := strings.Split(envValue, ",")
			trimmedValues := make([]string, 0, len(values))

			for _, value := range values {
				trimmed := strings.TrimSpace(value)
				if trimmed != "" {
					trimmedValues = append(trimmedValues, trimmed)
				}
			}

			field.Set(reflect.ValueOf(trimmedValues))
		} else {
			return fmt.Errorf("%w for field %s", errUnsupportedSliceType, fieldType.Name)
		}
	case reflect.Struct:
		if err := readEnv(field.Addr().Interface()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w for field %s: %s", errUnsupportedFieldType, fieldType.Name, field.Kind())
	}

	return nil
}

// isZero checks if a reflect.Value is its zero value.
func isZero(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.String:
		return value.Len() == 0
	case reflect.Bool:
		return !value.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int() == 0
	case reflect.Float32, reflect.Float64:
		return value.Float() == 0
	case reflect.Slice:
		return value.Len() == 0
	case reflect.Struct:
		// For structs, simply consider it zero if all its fields are zero.
		for fieldIndex := range value.NumField() {
			if !isZero(value.Field(fieldIndex)) {
				return false
			}
		}

		return true
	}

	return false
}

