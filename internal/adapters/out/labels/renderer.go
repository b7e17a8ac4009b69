package labels

import (
	"bytes"
	"encoding/json"
	"image"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the side length of rendered QR PNGs in pixels.
const qrSize = 256

// RenderQRPNG marshals the payload to JSON and renders it as a QR PNG.
// Low error correction keeps dense container payloads scannable.
func RenderQRPNG(payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(raw), qrcode.Low, qrSize)
}

// renderCode128PNG renders a code128 barcode as a PNG at the given pixel
// size. The image is normalized to NRGBA so gofpdf can embed it.
func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := png.Encode(&out, toNRGBA(scaled)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
