package barcode

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
)

// The fixed format set scanned by both strategies.
var scanFormats = []gozxing.BarcodeFormat{
	gozxing.BarcodeFormat_EAN_13,
	gozxing.BarcodeFormat_EAN_8,
	gozxing.BarcodeFormat_CODE_128,
	gozxing.BarcodeFormat_CODE_39,
	gozxing.BarcodeFormat_UPC_A,
}

type zxingDecoder struct {
	name      string
	newReader func() gozxing.Reader
	hints     map[gozxing.DecodeHintType]interface{}
}

func (d *zxingDecoder) Name() string {
	return d.name
}

// Decode is a single-shot best-effort scan. The reader and binary bitmap
// are scoped to the attempt; a panicking reader is reported as a failed
// attempt so the chain can move on.
func (d *zxingDecoder) Decode(img image.Image) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Failed(fmt.Sprintf("reader panic: %v", r))
		}
	}()

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return NotAttempted("prepare bitmap: " + err.Error())
	}

	result, err := d.newReader().Decode(bmp, d.hints)
	if err != nil {
		return Failed(err.Error())
	}
	if result == nil || result.GetText() == "" {
		return Failed("no candidate found")
	}
	return Decoded(result.GetText())
}

// NewFastOneDDecoder scans only the one-dimensional retail formats with
// no extra passes. It is the cheap first attempt of the default chain.
func NewFastOneDDecoder() Decoder {
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_POSSIBLE_FORMATS: scanFormats,
	}
	return &zxingDecoder{
		name:      "oned",
		newReader: func() gozxing.Reader { return oned.NewMultiFormatOneDReader(hints) },
		hints:     hints,
	}
}

// NewMultiFormatDecoder is the slower software fallback: same formats,
// try-harder image processing.
func NewMultiFormatDecoder() Decoder {
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_POSSIBLE_FORMATS: scanFormats,
		gozxing.DecodeHintType_TRY_HARDER:       true,
	}
	return &zxingDecoder{
		name:      "multiformat",
		newReader: func() gozxing.Reader { return gozxing.NewMultiFormatReader() },
		hints:     hints,
	}
}

// NewDefaultChain is the ordered fallback used by the scan endpoint:
// fast one-dimensional pass first, try-harder multi-format second.
func NewDefaultChain() *Chain {
	return NewChain(NewFastOneDDecoder(), NewMultiFormatDecoder())
}
