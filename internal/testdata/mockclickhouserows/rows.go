package mockclickhouserows

import (
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/stretchr/testify/mock"
)

// Rows replays a fixed list of single-column string rows.
type Rows struct {
	mock.Mock

	Docs []string
	pos  int
}

var _ driver.Rows = &Rows{}

func (m *Rows) Next() bool {
	if m.pos >= len(m.Docs) {
		return false
	}
	m.pos++
	return true
}

func (m *Rows) Scan(dest ...any) error {
	if len(dest) > 0 {
		if s, ok := dest[0].(*string); ok {
			*s = m.Docs[m.pos-1]
		}
	}
	return nil
}

func (m *Rows) ScanStruct(dest any) error {
	mockArgs := m.Called(dest)
	return mockArgs.Error(0)
}

func (m *Rows) ColumnTypes() []driver.ColumnType {
	return nil
}

func (m *Rows) Totals(dest ...any) error {
	return nil
}

func (m *Rows) Columns() []string {
	return []string{"doc"}
}

func (m *Rows) Close() error {
	return nil
}

func (m *Rows) Err() error {
	return nil
}
