package kval

import "fmt"

// Dict maps a keys list onto a values list of the same length.
type Dict struct {
	keys   Value
	values Value
}

func (Dict) kval() {}

// Code returns the dictionary code (99).
func (Dict) Code() int8 { return CodeDict }

// Keys returns the keys list.
func (d Dict) Keys() Value { return d.keys }

// Values returns the values list.
func (d Dict) Values() Value { return d.values }

// Len returns the number of entries.
func (d Dict) Len() int { return Len(d.keys) }

// NewDict pairs keys with values. Both must be lists of equal length.
func NewDict(keys, values Value) (Dict, error) {
	if !IsList(keys) || !IsList(values) {
		return Dict{}, TypeMismatch("keys and values must be lists")
	}
	if Len(keys) != Len(values) {
		return Dict{}, Precondition(fmt.Sprintf("length mismatch: %d keys, %d values", Len(keys), Len(values)))
	}
	return Dict{keys: keys, values: values}, nil
}

// Lookup returns the value stored under key.
func (d Dict) Lookup(key Value) (Value, bool) {
	for i := 0; i < Len(d.keys); i++ {
		k, err := Index(d.keys, i)
		if err != nil {
			return nil, false
		}
		if Equal(k, key) {
			v, err := Index(d.values, i)
			return v, err == nil
		}
	}
	return nil, false
}

// Table is a column-oriented dictionary: symbol column names mapped to
// equal-length list columns.
type Table struct {
	dict Dict
}

func (Table) kval() {}

// Code returns the table code (98).
func (Table) Code() int8 { return CodeTable }

// NewTable builds a table from column names and columns.
func NewTable(names List, columns Generic) (Table, error) {
	if names.typ != TypeSymbol {
		return Table{}, TypeMismatch("column names must be a symbol list")
	}
	if names.Len() != len(columns) {
		return Table{}, Precondition(fmt.Sprintf("length mismatch: %d names, %d columns", names.Len(), len(columns)))
	}
	rows := -1
	for i, c := range columns {
		if !IsList(c) {
			return Table{}, TypeMismatch(fmt.Sprintf("column %s is not a list", names.Strings()[i]))
		}
		if rows >= 0 && Len(c) != rows {
			return Table{}, Precondition(fmt.Sprintf("column %s has %d rows, want %d", names.Strings()[i], Len(c), rows))
		}
		rows = Len(c)
	}
	return Table{dict: Dict{keys: names.Clone(), values: GenericOf(columns...)}}, nil
}

// Dict returns the underlying column dictionary.
func (t Table) Dict() Dict { return t.dict }

// Names returns the column names.
func (t Table) Names() []string { return t.dict.keys.(List).Strings() }

// Width returns the number of columns.
func (t Table) Width() int { return t.dict.Len() }

// Len returns the number of rows.
func (t Table) Len() int {
	cols := t.columns()
	if len(cols) == 0 {
		return 0
	}
	return Len(cols[0])
}

func (t Table) columns() Generic {
	g, _ := t.dict.values.(Generic)
	return g
}

// Column returns column i.
func (t Table) Column(i int) (Value, error) {
	cols := t.columns()
	if i < 0 || i >= len(cols) {
		return nil, Precondition(MsgIndexOutOfRange)
	}
	return cols[i], nil
}

// ColumnByName returns the column called name.
func (t Table) ColumnByName(name string) (Value, bool) {
	for i, n := range t.Names() {
		if n == name {
			return t.columns()[i], true
		}
	}
	return nil, false
}

// Row returns row i as a dictionary of column name to element.
func (t Table) Row(i int) (Dict, error) {
	if i < 0 || i >= t.Len() {
		return Dict{}, Precondition(MsgIndexOutOfRange)
	}
	cols := t.columns()
	vals := make(Generic, len(cols))
	for j, c := range cols {
		v, err := Index(c, i)
		if err != nil {
			return Dict{}, err
		}
		vals[j] = v
	}
	return Dict{keys: t.dict.keys, values: vals}, nil
}
