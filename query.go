package exifer

import (
	"crypto/rand"
	"fmt"
	"io"
)

// WipeOptions determines which categories of found fields are wiped
//
// a category is wiped if All is set or its own flag is set. A nil *WipeOptions wipes nothing
type WipeOptions struct {
	All    bool
	Date   bool
	Device bool
	// Location is reserved - no location fields are resolved yet
	Location bool
	UID      bool
	Comment  bool
	Misc     bool
	// Entropy is the source of the random pass bytes, defaults to crypto/rand.Reader
	Entropy io.Reader
}

// Wipes reports whether fields of category c should be wiped
func (o *WipeOptions) Wipes(c Category) bool {
	if o == nil {
		return false
	}
	if o.All {
		return true
	}
	switch c {
	case CategoryDate:
		return o.Date
	case CategoryDevice:
		return o.Device
	case CategoryMisc:
		return o.Misc
	case CategoryComment:
		return o.Comment
	case CategoryUniqueID:
		return o.UID
	case CategoryLocation:
		return o.Location
	}
	return false
}

// Any reports whether any category would be wiped
func (o *WipeOptions) Any() bool {
	return o != nil && (o.All || o.Date || o.Device || o.Location || o.UID || o.Comment || o.Misc)
}

func (o *WipeOptions) entropy() io.Reader {
	if o == nil || o.Entropy == nil {
		return rand.Reader
	}
	return o.Entropy
}

// Field is a catalog field found in a buffer
type Field struct {
	FieldDescriptor
	// Value is the decoded payload, captured before any wipe
	Value string
	Entry TagEntry
	Wiped bool
}

// QueryDates reports (and optionally wipes) the date and time fields
func QueryDates(b *Buffer, seg Segment, order ByteOrder, options *WipeOptions) ([]Field, error) {
	return query(b, seg, order, options, dateFields)
}

// QueryDevice reports (and optionally wipes) the device, model and software fields
func QueryDevice(b *Buffer, seg Segment, order ByteOrder, options *WipeOptions) ([]Field, error) {
	return query(b, seg, order, options, deviceFields)
}

// QueryMisc reports (and optionally wipes) descriptions, comments and the unique image ID
func QueryMisc(b *Buffer, seg Segment, order ByteOrder, options *WipeOptions) ([]Field, error) {
	return query(b, seg, order, options, miscFields)
}

func query(b *Buffer, seg Segment, order ByteOrder, options *WipeOptions, fields []FieldDescriptor) ([]Field, error) {
	result := make([]Field, 0, len(fields))
	for _, desc := range fields {
		entry, ok := Resolve(b, seg, desc.Identifier(order), order, nil)
		if !ok {
			continue
		}
		// a payload that fails validation is a false positive match on the identifier bytes
		if first := b.data[entry.Data.Start]; desc.Valid != nil && !desc.Valid(first) {
			continue
		}
		field := Field{
			FieldDescriptor: desc,
			Value:           entry.Text(b),
			Entry:           entry,
		}
		if options.Wipes(desc.Category) {
			if err := WipeWith(b, entry.Data, options.entropy()); err != nil {
				return result, fmt.Errorf("failed to wipe %q at 0x%X: %w", desc.Label, entry.Data.Start, err)
			}
			field.Wiped = true
		}
		result = append(result, field)
	}
	return result, nil
}

// Report is the outcome of Scan
type Report struct {
	Segment Segment
	Order   ByteOrder
	// OrderDetected is false when no TIFF byte order mark was found and Order is the default
	OrderDetected bool
	Dates         []Field
	Device        []Field
	Misc          []Field
}

// Count returns the total number of fields found
func (r *Report) Count() int {
	return len(r.Dates) + len(r.Device) + len(r.Misc)
}

// Fields returns all found fields in query order
func (r *Report) Fields() []Field {
	result := make([]Field, 0, r.Count())
	result = append(result, r.Dates...)
	result = append(result, r.Device...)
	return append(result, r.Misc...)
}

// Scan locates the metadata block in b, detects its byte order and runs every category query
//
// big-endian is assumed when the byte order mark cannot be found
func Scan(b *Buffer, options *WipeOptions) (result *Report, err error) {
	result = &Report{Segment: Locate(b)}
	result.Order, result.OrderDetected = DetectByteOrder(b, result.Segment)
	if result.Dates, err = QueryDates(b, result.Segment, result.Order, options); err == nil {
		if result.Device, err = QueryDevice(b, result.Segment, result.Order, options); err == nil {
			result.Misc, err = QueryMisc(b, result.Segment, result.Order, options)
		}
	}
	return result, err
}
