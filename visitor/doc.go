// Package visitor provides index based iteration over slices, arrays, collections
// and map backed sets, so converters can treat all of them as element sequences.
package visitor
