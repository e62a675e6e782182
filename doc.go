// Package coerce converts loosely typed values into requested Go types.
//
// A Registry maps target types to converters. Resolution prefers an exact
// converter and falls back to structural extension converters that rebuild
// slices, arrays, lists and sets element by element.
//
//	registry, err := coerce.New(coerce.WithDatePatterns("yyyy/MM/dd"))
//	date, err := coerce.Convert[civil.Date](registry, "2018/02/21")
package coerce
