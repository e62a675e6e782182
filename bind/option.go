package bind

import "github.com/viant/tagly/format/text"

// Option configures binder
type Option func(b *Binder)

// WithCaseFormat sets record key case format used for fields without explicit name
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(b *Binder) {
		b.caseFormat = caseFormat
	}
}

// WithStrict fails binding of records with keys not matching any field
func WithStrict() Option {
	return func(b *Binder) {
		b.strict = true
	}
}
