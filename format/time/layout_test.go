package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	var testCases = []struct {
		description string
		pattern     string
		expect      string
		hasError    bool
	}{
		{description: "compact date", pattern: "yyyyMMdd", expect: "20060102"},
		{description: "slash date time", pattern: "yyyy/MM/dd HH:mm", expect: "2006/01/02 15:04"},
		{description: "iso with millis", pattern: "yyyy-MM-dd'T'HH:mm:ss.SSS", expect: "2006-01-02T15:04:05.000"},
		{description: "offset", pattern: "yyyy/MM/dd HH:mmZ", expect: "2006/01/02 15:04-0700"},
		{description: "iso offset", pattern: "yyyy-MM-dd'T'HH:mmXXX", expect: "2006-01-02T15:04Z07:00"},
		{description: "names", pattern: "EEE, d MMM yy h:mm a", expect: "Mon, 2 Jan 06 3:04 PM"},
		{description: "escaped quote", pattern: "HH'h'mm''", expect: "15h04'"},
		{description: "quoted quote", pattern: "'o''clock' HH", expect: "o'clock 15"},
		{description: "short year", pattern: "yy.M.d", expect: "06.1.2"},
		{description: "compact time", pattern: "yyyy.MM.dd HHmm", expect: "2006.01.02 1504"},
		{description: "zone name", pattern: "HH:mm z", expect: "15:04 MST"},
		{description: "unsupported letter", pattern: "yyyy-GG", hasError: true},
		{description: "bare fraction", pattern: "ssSSS", hasError: true},
		{description: "digit literal", pattern: "yyyy1MM", hasError: true},
		{description: "layout literal", pattern: "'Jan' dd", hasError: true},
		{description: "unterminated quote", pattern: "yyyy 'T", hasError: true},
		{description: "too many days", pattern: "ddd", hasError: true},
		{description: "empty", pattern: "", hasError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			layout, err := Compile(testCase.pattern)
			if testCase.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, layout.Value)
			assert.Equal(t, testCase.pattern, layout.Pattern)
		})
	}
}

func TestDateFormatToTimeLayout(t *testing.T) {
	assert.Equal(t, "2006-01-02", DateFormatToTimeLayout("yyyy-MM-dd"))
	assert.Equal(t, "", DateFormatToTimeLayout("QQQ"))
}

func TestPatterns_Parse(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	patterns, err := NewPatterns("yyyy/MM/dd", "yyyy-MM-dd")
	require.NoError(t, err)

	ts, err := patterns.Parse("2018-02-21", tokyo)
	require.NoError(t, err)
	assert.True(t, time.Date(2018, 2, 21, 0, 0, 0, 0, tokyo).Equal(ts))

	_, err = patterns.Parse("2018.02.21", tokyo)
	mismatch := &MismatchError{}
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []string{"yyyy/MM/dd", "yyyy-MM-dd"}, mismatch.Patterns)
	assert.Contains(t, err.Error(), "yyyy/MM/dd, yyyy-MM-dd")

	_, err = patterns.Parse("2018/02/21 10:00", tokyo)
	assert.Error(t, err, "trailing text should not match")

	zoned := MustPatterns("yyyy/MM/dd HH:mmZ")
	ts, err = zoned.Parse("2018/02/21 12:34+0900", time.UTC)
	require.NoError(t, err)
	assert.True(t, time.Date(2018, 2, 21, 3, 34, 0, 0, time.UTC).Equal(ts))
}

func TestPatterns_Format(t *testing.T) {
	patterns := MustPatterns("yyyy/MM/dd", "yyyy-MM-dd")
	assert.Equal(t, "2018/02/21", patterns.Format(time.Date(2018, 2, 21, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2, patterns.Len())
	assert.Equal(t, "yyyy/MM/dd", patterns.First().Pattern)

	native := LayoutPatterns(time.RFC3339)
	assert.Equal(t, "2018-02-21T10:00:00Z", native.Format(time.Date(2018, 2, 21, 10, 0, 0, 0, time.UTC)))
}
