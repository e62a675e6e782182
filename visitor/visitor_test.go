package visitor

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/coerce/collection"
)

func TestSequenceOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       any
		expect      []any
		notSequence bool
	}{
		{description: "strings", value: []string{"a", "b"}, expect: []any{"a", "b"}},
		{description: "ints", value: []int{1, 2, 3}, expect: []any{1, 2, 3}},
		{description: "int32 via reflection", value: []int32{7}, expect: []any{int32(7)}},
		{description: "array", value: [2]string{"x", "y"}, expect: []any{"x", "y"}},
		{description: "collection", value: collection.NewTreeSet(3, 1, 2), expect: []any{1, 2, 3}},
		{description: "empty", value: []any{}, expect: []any{}},
		{description: "string", value: "abc", notSequence: true},
		{description: "nil", value: nil, notSequence: true},
		{description: "map", value: map[string]int{}, notSequence: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			sequence, ok := SequenceOf(testCase.value)
			if testCase.notSequence {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, len(testCase.expect), sequence.Len)
			elements, err := sequence.Elements()
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, elements)
		})
	}
}

func TestSequence_Visit(t *testing.T) {
	sequence, _ := SequenceOf([]any{"a", 1, 3.14, true})
	visited := 0
	err := sequence.Visit(func(index int, element any) (bool, error) {
		visited++
		return index < 1, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, visited)

	err = sequence.Visit(func(index int, element any) (bool, error) {
		return true, errors.New("stop")
	})
	assert.EqualError(t, err, "stop")

	first, ok := sequence.First()
	assert.True(t, ok)
	assert.Equal(t, "a", first)
	_, ok = TypedSliceOf([]int{}).First()
	assert.False(t, ok)
}

func TestMapSetOf(t *testing.T) {
	sequence, ok := MapSetOf(map[int]struct{}{3: {}, 1: {}, 2: {}})
	require.True(t, ok)
	elements, _ := sequence.Elements()
	assert.Equal(t, []any{1, 2, 3}, elements)

	sequence, ok = MapSetOf(map[string]bool{"b": true, "a": true, "c": false})
	require.True(t, ok)
	elements, _ = sequence.Elements()
	assert.Equal(t, []any{"a", "b"}, elements)

	_, ok = MapSetOf(map[string]int{"a": 1})
	assert.False(t, ok)
	assert.True(t, IsMapSet(reflect.TypeOf(map[string]struct{}{})))
	assert.False(t, IsMapSet(reflect.TypeOf([]string{})))
}

func TestSyncMap_Load(t *testing.T) {
	m := NewSyncMap[string, int]()
	v, err := m.Load("a", func(key string) (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, _ = m.Load("a", func(key string) (int, error) { return 2, nil })
	assert.Equal(t, 1, v)
	_, err = m.Load("b", func(key string) (int, error) { return 0, errors.New("failed") })
	assert.Error(t, err)
	_, ok := m.Get("b")
	assert.False(t, ok)
}
