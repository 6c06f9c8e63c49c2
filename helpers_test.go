package exifer

// offset of the TIFF header in images built by testImage: SOI (2) + APP1 marker (2) + length (2) + "Exif\x00\x00" (6)
const testTIFF = 12

type testEntry struct {
	tag    uint16
	typ    TagType
	length uint32
	offset uint32
	fixed  bool // offset is used as given rather than pointing into the payload area
}

// testImage builds a minimal JPEG with an APP1 EXIF segment holding a single IFD
type testImage struct {
	order   ByteOrder
	size    int
	entries []testEntry
	payload []byte
	offsets []int // payload position of each entry (-1 for fixed entries)
}

func newTestImage(order ByteOrder, size int) *testImage {
	return &testImage{order: order, size: size}
}

// text adds an ASCII entry with a null terminated payload
func (ti *testImage) text(tag uint16, value string) *testImage {
	ti.entries = append(ti.entries, testEntry{tag: tag, typ: TypeASCII, length: uint32(len(value) + 1)})
	ti.offsets = append(ti.offsets, len(ti.payload))
	ti.payload = append(ti.payload, value...)
	ti.payload = append(ti.payload, 0)
	return ti
}

// undefined adds an UNDEFINED entry whose payload is not terminated
func (ti *testImage) undefined(tag uint16, value []byte) *testImage {
	ti.entries = append(ti.entries, testEntry{tag: tag, typ: TypeUserComment, length: uint32(len(value))})
	ti.offsets = append(ti.offsets, len(ti.payload))
	ti.payload = append(ti.payload, value...)
	return ti
}

// raw adds an entry with a fixed payload offset
func (ti *testImage) raw(tag uint16, typ TagType, length, offset uint32) *testImage {
	ti.entries = append(ti.entries, testEntry{tag: tag, typ: typ, length: length, offset: offset, fixed: true})
	ti.offsets = append(ti.offsets, -1)
	return ti
}

func (ti *testImage) payloadBase() int {
	// IFD at TIFF+8: entry count (2), entries, next IFD offset (4)
	return 8 + 2 + 12*len(ti.entries) + 4
}

// dataStart returns the absolute offset of the i-th entry's payload
func (ti *testImage) dataStart(i int) int {
	return testTIFF + ti.payloadBase() + ti.offsets[i]
}

func (ti *testImage) bytes() []byte {
	out := []byte{0xFF, 0xD8, 0xFF, 0xE1, 0x00, 0x00}
	out = append(out, "Exif\x00\x00"...)
	if ti.order == LittleEndian {
		out = append(out, 'I', 'I', 0x2A, 0x00)
	} else {
		out = append(out, 'M', 'M', 0x00, 0x2A)
	}
	out = appendUint32(ti.order, out, 8)
	out = appendUint16(ti.order, out, uint16(len(ti.entries)))
	base := ti.payloadBase()
	for i, e := range ti.entries {
		offset := e.offset
		if !e.fixed {
			offset = uint32(base + ti.offsets[i])
		}
		out = appendUint16(ti.order, out, e.tag)
		out = appendUint16(ti.order, out, uint16(e.typ))
		out = appendUint32(ti.order, out, e.length)
		out = appendUint32(ti.order, out, offset)
	}
	out = appendUint32(ti.order, out, 0)
	out = append(out, ti.payload...)
	for len(out) < ti.size {
		out = append(out, 0)
	}
	// APP1 segment length covers everything after the marker
	segLen := len(out) - 4
	if segLen > 0xFFFF {
		segLen = 0xFFFF
	}
	out[4], out[5] = byte(segLen>>8), byte(segLen)
	return out
}

func (ti *testImage) buffer() *Buffer {
	return NewBuffer(ti.bytes())
}

func appendUint16(order ByteOrder, out []byte, v uint16) []byte {
	var raw [2]byte
	order.binary().PutUint16(raw[:], v)
	return append(out, raw[:]...)
}

func appendUint32(order ByteOrder, out []byte, v uint32) []byte {
	var raw [4]byte
	order.binary().PutUint32(raw[:], v)
	return append(out, raw[:]...)
}
