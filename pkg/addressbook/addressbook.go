// Package addressbook keeps contact records in memory, keyed by contact name.
//
// An AddressBook holds at most one record per name: adding a record whose name
// is already present replaces the stored one. Iteration follows the order in
// which names were first added. The type has no internal locking; callers
// sharing a book between goroutines must serialize access themselves.
package addressbook

import (
	"addressbook/pkg/domain"
	"iter"
	"slices"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option configures an AddressBook.
type Option func(*AddressBook)

// WithLogger sets the logger that receives the book's mutation events.
func WithLogger(logger *zap.Logger) Option {
	return func(b *AddressBook) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithLogLevel sets the level of the book's mutation events. The default is
// debug.
func WithLogLevel(level zapcore.Level) Option {
	return func(b *AddressBook) {
		b.level = level
	}
}

// AddressBook maps contact names to records.
type AddressBook struct {
	records map[string]*domain.Record
	// order holds the keys of records in first-insertion order.
	order  []string
	logger *zap.Logger
	level  zapcore.Level
}

// New creates an empty AddressBook.
func New(opts ...Option) *AddressBook {
	b := &AddressBook{
		records: make(map[string]*domain.Record),
		logger:  zap.NewNop(),
		level:   zapcore.DebugLevel,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddRecord stores record under its name. An existing record with the same
// name is replaced without merging phones; the name keeps its first
// position in iteration order. A nil record is ignored.
func (b *AddressBook) AddRecord(record *domain.Record) {
	if record == nil {
		return
	}

	name := record.Name().Value()
	if _, ok := b.records[name]; ok {
		b.logger.Log(b.level, "replacing record", zap.String("name", name))
	} else {
		b.order = append(b.order, name)
		b.logger.Log(b.level, "adding record", zap.String("name", name))
	}
	b.records[name] = record
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*domain.Record, bool) {
	r, ok := b.records[name]

	return r, ok
}

// Delete removes the record stored under name and reports whether there was
// one. Deleting an unknown name does nothing.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}

	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	b.logger.Log(b.level, "deleted record", zap.String("name", name))

	return true
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int { return len(b.records) }

// Names returns the stored names in iteration order.
func (b *AddressBook) Names() []string { return slices.Clone(b.order) }

// All yields every (name, record) pair in iteration order. The book must not
// be modified while iterating.
func (b *AddressBook) All() iter.Seq2[string, *domain.Record] {
	return func(yield func(string, *domain.Record) bool) {
		for _, name := range b.order {
			if !yield(name, b.records[name]) {
				return
			}
		}
	}
}

// String renders every record on its own line, in iteration order.
func (b *AddressBook) String() string {
	var sb strings.Builder
	for _, r := range b.All() {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
