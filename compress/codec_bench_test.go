package compress

import (
	"testing"

	"github.com/misbkit/klv/format"
)

func BenchmarkCodec_Compress(b *testing.B) {
	data := testArchive()
	for _, compression := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(compression.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				if _, err := codec.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCodec_Decompress(b *testing.B) {
	data := testArchive()
	for _, compression := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		if err != nil {
			b.Fatal(err)
		}
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(compression.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
