package exifer

import (
	"testing"

	"github.com/gamh86/exifer/_test_data/images"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanImages(t *testing.T) {
	expect := map[string]struct {
		order  ByteOrder
		dates  []string
		device []string
		misc   []string
	}{
		"canon_be.jpg": {
			order:  BigEndian,
			dates:  []string{"2021:07:04 21:15:03", "2021:07:04 20:58:41", "2021:07:04 20:58:41"},
			device: []string{"Canon", "Canon EOS 80D", "Digital Photo Professional", "182055001234"},
			misc:   []string{"Sunset over the bay", "Jane Doe", "fireworks", "8f3c2a1b9d7e4f60a1b2c3d4e5f60718"},
		},
		"nikon_le.jpg": {
			order:  LittleEndian,
			dates:  []string{"2019:12:24 18:00:00", "2019:12:24 17:42:10", "+01:00"},
			device: []string{"NIKON CORPORATION", "NIKON D750", "Ver.1.10"},
			misc:   []string{"(c) J. Doe"},
		},
		"plain.jpg": {},
	}
	values := func(fields []Field) []string {
		var result []string
		for _, f := range fields {
			result = append(result, f.Value)
		}
		return result
	}
	names := images.Names()
	require.Len(t, names, len(expect))
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			want, ok := expect[name]
			require.True(t, ok)
			data, err := images.ReadFile(name)
			require.NoError(t, err)
			original := append([]byte(nil), data...)
			b := NewBuffer(data)

			report, err := Scan(b, nil)
			require.NoError(t, err)
			assert.Equal(t, want.dates, values(report.Dates))
			assert.Equal(t, want.device, values(report.Device))
			assert.Equal(t, want.misc, values(report.Misc))
			if report.Count() > 0 {
				assert.Equal(t, want.order, report.Order)
			}
			assert.Equal(t, original, data)

			report, err = Scan(b, &WipeOptions{All: true})
			require.NoError(t, err)
			wiped := make([]bool, len(data))
			for _, f := range report.Fields() {
				assert.True(t, f.Wiped, f.Label)
				for i := f.Entry.Data.Start; i < f.Entry.Data.End; i++ {
					wiped[i] = true
				}
			}
			for i := range data {
				if wiped[i] {
					assert.Zero(t, data[i], "offset %d", i)
				} else {
					assert.Equal(t, original[i], data[i], "offset %d", i)
				}
			}

			report, err = Scan(b, nil)
			require.NoError(t, err)
			assert.Zero(t, report.Count())
		})
	}
}
