package common

import (
	"reflect"
)

// HasNil 检查参数中是否有nil值,包括值为nil的指针、map、slice、func、chan和interface
func HasNil(params ...interface{}) bool {
	for _, p := range params {
		if p == nil {
			return true
		}
		v := reflect.ValueOf(p)
		switch v.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
			if v.IsNil() {
				return true
			}
		}
	}
	return false
}

// IsEmpty 检查字符串参数中是否有空字符串
func IsEmpty(params ...string) bool {
	for _, p := range params {
		if p == "" {
			return true
		}
	}
	return false
}
