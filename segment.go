package exifer

const (
	// HeaderSkip is the distance from the APP1 marker to the TIFF header:
	// marker (2 bytes) + segment length (2 bytes) + "Exif\x00\x00" (6 bytes)
	//
	// payload offsets in directory entries are relative to the TIFF header
	HeaderSkip = 10
	// DefaultScanWindow is the scan limit used when no start-of-image marker
	// follows the metadata block
	DefaultScanWindow = 0x800
)

var (
	markerAPP1 = []byte{0xFF, 0xE1}
	markerSOI  = []byte{0xFF, 0xD8}
	signature  = []byte("Exif")
	orderII    = []byte{'I', 'I', 0x2A, 0x00}
	orderMM    = []byte{'M', 'M', 0x00, 0x2A}
)

// Segment describes where the metadata block starts and how far tag searches may go
type Segment struct {
	// Start is the offset of the APP1 marker (or where it would be, when only
	// the "Exif" signature was found)
	Start int
	// Limit is the exclusive upper bound for tag searches and payloads
	Limit int
	// Marker is true when the APP1 marker was found
	Marker bool
	// Signature is true when only the "Exif" signature was found
	Signature bool
}

// Found reports whether either the APP1 marker or the "Exif" signature was located
func (s Segment) Found() bool {
	return s.Marker || s.Signature
}

// TIFFHeader returns the offset of the TIFF header that payload offsets are relative to
func (s Segment) TIFFHeader() int {
	return s.Start + HeaderSkip
}

// searchStart returns the first offset a directory entry can occupy
func (s Segment) searchStart() int {
	if s.Marker {
		return s.TIFFHeader()
	}
	return s.Start
}

// Locate finds the start of the metadata block and the upper boundary for tag searches
//
// when neither the APP1 marker nor the "Exif" signature are present, the returned segment
// starts at offset 0 - callers get a degenerate segment rather than an error
func Locate(b *Buffer) Segment {
	seg := Segment{}
	if i := b.Index(markerAPP1, 0, b.Len()); i >= 0 {
		seg.Start, seg.Marker = i, true
	} else if i = b.IndexFold(signature, 0, b.Len()); i >= 0 {
		// the signature follows the marker and the 2 byte segment length
		seg.Start, seg.Signature = max(i-4, 0), true
	}
	seg.Limit = scanLimit(b, seg.Start)
	return seg
}

// scanLimit finds the start-of-image marker that follows the metadata block (i.e. an
// embedded thumbnail) so that tag searches never reach into compressed image data
func scanLimit(b *Buffer, start int) int {
	if i := b.Index(markerSOI, start, b.Len()); i >= 0 {
		return i
	}
	limit, ok := addOffset(start, DefaultScanWindow)
	if !ok || limit > b.Len() {
		limit = b.Len()
	}
	return limit
}

// DetectByteOrder reads the TIFF byte order mark ("II*\x00" or "MM\x00*") of the segment
//
// the mark is expected directly after the fixed header; if it is not there the segment is
// searched for it. Returns false if no mark exists below the scan limit
func DetectByteOrder(b *Buffer, seg Segment) (ByteOrder, bool) {
	at := seg.TIFFHeader()
	if raw, ok := b.Slice(Range{Start: at, End: at + len(orderII)}); ok {
		switch string(raw) {
		case string(orderII):
			return LittleEndian, true
		case string(orderMM):
			return BigEndian, true
		}
	}
	ii := b.Index(orderII, seg.Start, seg.Limit)
	mm := b.Index(orderMM, seg.Start, seg.Limit)
	switch {
	case ii >= 0 && (mm < 0 || ii < mm):
		return LittleEndian, true
	case mm >= 0:
		return BigEndian, true
	}
	return BigEndian, false
}
