package jsoncodec_test

import (
	"encoding/json"
	"testing"

	goccyjson "github.com/goccy/go-json"

	jsoncodec "github.com/reoring/jsoncodec"
	"github.com/reoring/jsoncodec/dsl"
)

func rfcImageFixture() []byte {
	return []byte(`{"Image":{"Animated":false,"Height":600,"Ids":[116,943,234,38793],"Thumbnail":{"Height":125,"Url":"http:\/\/www.example.com\/image\/481989943","Width":100},"Title":"View from 15th Floor","Width":800}}`)
}

type benchThumbnail struct {
	Height int32
	Url    string
	Width  int32
}

type benchImage struct {
	Animated  bool
	Height    int32
	Ids       []int32
	Thumbnail benchThumbnail
	Title     string
	Width     int32
}

type benchEnvelope struct {
	Image benchImage
}

func benchImageSpec() dsl.RecordSpec[*benchImage, benchImage] {
	thumb := dsl.RecordSpec[*benchThumbnail, benchThumbnail]{
		Init: func() *benchThumbnail { return &benchThumbnail{} },
		Step: func(s *benchThumbnail, name string) (dsl.FieldStep[*benchThumbnail], bool) {
			switch name {
			case "height":
				return dsl.FieldStep[*benchThumbnail]{
					Decoder: dsl.Boxed(dsl.IntDecoder[int32](32)),
					Apply:   func(s *benchThumbnail, name string, v any) *benchThumbnail { s.Height = v.(int32); return s },
				}, true
			case "url":
				return dsl.FieldStep[*benchThumbnail]{
					Decoder: dsl.Boxed(dsl.StrDecoder()),
					Apply:   func(s *benchThumbnail, name string, v any) *benchThumbnail { s.Url = v.(string); return s },
				}, true
			case "width":
				return dsl.FieldStep[*benchThumbnail]{
					Decoder: dsl.Boxed(dsl.IntDecoder[int32](32)),
					Apply:   func(s *benchThumbnail, name string, v any) *benchThumbnail { s.Width = v.(int32); return s },
				}, true
			}
			return dsl.FieldStep[*benchThumbnail]{}, false
		},
		Finalize: func(s *benchThumbnail, cfg jsoncodec.Config) (benchThumbnail, error) { return *s, nil },
	}
	return dsl.RecordSpec[*benchImage, benchImage]{
		Init: func() *benchImage { return &benchImage{} },
		Step: func(s *benchImage, name string) (dsl.FieldStep[*benchImage], bool) {
			switch name {
			case "animated":
				return dsl.FieldStep[*benchImage]{
					Decoder: dsl.Boxed(dsl.BoolDecoder()),
					Apply:   func(s *benchImage, name string, v any) *benchImage { s.Animated = v.(bool); return s },
				}, true
			case "height":
				return dsl.FieldStep[*benchImage]{
					Decoder: dsl.Boxed(dsl.IntDecoder[int32](32)),
					Apply:   func(s *benchImage, name string, v any) *benchImage { s.Height = v.(int32); return s },
				}, true
			case "ids":
				return dsl.FieldStep[*benchImage]{
					Decoder: dsl.Boxed(dsl.List[int32](dsl.IntDecoder[int32](32))),
					Apply:   func(s *benchImage, name string, v any) *benchImage { s.Ids = v.([]int32); return s },
				}, true
			case "thumbnail":
				return dsl.FieldStep[*benchImage]{
					Decoder: dsl.Boxed(dsl.Record(thumb)),
					Apply:   func(s *benchImage, name string, v any) *benchImage { s.Thumbnail = v.(benchThumbnail); return s },
				}, true
			case "title":
				return dsl.FieldStep[*benchImage]{
					Decoder: dsl.Boxed(dsl.StrDecoder()),
					Apply:   func(s *benchImage, name string, v any) *benchImage { s.Title = v.(string); return s },
				}, true
			case "width":
				return dsl.FieldStep[*benchImage]{
					Decoder: dsl.Boxed(dsl.IntDecoder[int32](32)),
					Apply:   func(s *benchImage, name string, v any) *benchImage { s.Width = v.(int32); return s },
				}, true
			}
			return dsl.FieldStep[*benchImage]{}, false
		},
		Finalize: func(s *benchImage, cfg jsoncodec.Config) (benchImage, error) { return *s, nil },
	}
}

func benchEnvelopeSpec() dsl.RecordSpec[*benchEnvelope, benchEnvelope] {
	img := benchImageSpec()
	return dsl.RecordSpec[*benchEnvelope, benchEnvelope]{
		Init: func() *benchEnvelope { return &benchEnvelope{} },
		Step: func(s *benchEnvelope, name string) (dsl.FieldStep[*benchEnvelope], bool) {
			if name != "image" {
				return dsl.FieldStep[*benchEnvelope]{}, false
			}
			return dsl.FieldStep[*benchEnvelope]{
				Decoder: dsl.Boxed(dsl.Record(img)),
				Apply:   func(s *benchEnvelope, name string, v any) *benchEnvelope { s.Image = v.(benchImage); return s },
			}, true
		},
		Finalize: func(s *benchEnvelope, cfg jsoncodec.Config) (benchEnvelope, error) { return *s, nil },
	}
}

// Benchmark_Decode_JsonCodec measures this module's hand-rolled record
// decoder against the fixture from spec.md §8 scenario 4.
func Benchmark_Decode_JsonCodec(b *testing.B) {
	data := rfcImageFixture()
	cfg := jsoncodec.Configure(jsoncodec.WithFieldNameMapping(jsoncodec.PascalCase))
	dec := dsl.Record(benchEnvelopeSpec())
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dec.Decode(data, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark_Decode_EncodingJSON is the standard-library baseline for the
// same fixture. The structs carry no struct tags: their Go field names
// already match the PascalCase wire names.
type stdThumbnail struct {
	Height int32
	Url    string
	Width  int32
}

type stdImage struct {
	Animated  bool
	Height    int32
	Ids       []int32
	Thumbnail stdThumbnail
	Title     string
	Width     int32
}

type stdEnvelope struct {
	Image stdImage
}

func Benchmark_Decode_EncodingJSON(b *testing.B) {
	data := rfcImageFixture()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v stdEnvelope
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark_Decode_GoccyGoJson is the goccy/go-json baseline: same struct
// shape, a drop-in Unmarshal.
func Benchmark_Decode_GoccyGoJson(b *testing.B) {
	data := rfcImageFixture()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v stdEnvelope
		if err := goccyjson.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}
